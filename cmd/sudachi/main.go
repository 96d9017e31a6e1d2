// Command sudachi is a minimal driver exercising the core tokenize
// pipeline end to end, analogous to how the teacher ships
// harfbuzz-tests as a consumer of ot: it owns no analysis behavior of
// its own, just argument parsing and a stdout/stderr loop.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	sudachi "github.com/go-sudachi/sudachi"
	"github.com/go-sudachi/sudachi/config"
	"github.com/go-sudachi/sudachi/morpheme"
)

func main() {
	var (
		configPath = flag.String("r", "", "path to a settings JSON file")
		systemDict = flag.String("systemDict", "", "path to the system dictionary")
		mode       = flag.String("mode", "C", "split mode: A, B, or C")
	)
	flag.Parse()

	if err := run(*configPath, *systemDict, *mode, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, systemDict, modeName string, args []string) error {
	splitMode, ok := morpheme.ParseSplitMode(modeName)
	if !ok {
		return fmt.Errorf("sudachi: invalid split mode %q", modeName)
	}

	cfg, err := config.Load(configPath, "", systemDict)
	if err != nil {
		return fmt.Errorf("sudachi: loading config: %w", err)
	}

	dict, err := sudachi.NewDictionary(cfg)
	if err != nil {
		return fmt.Errorf("sudachi: loading dictionary: %w", err)
	}
	defer dict.Close()

	analyzer := dict.Create(splitMode)

	if len(args) > 0 {
		for _, text := range args {
			if err := printTokens(analyzer, text); err != nil {
				return err
			}
		}
		return nil
	}

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		if err := printTokens(analyzer, sc.Text()); err != nil {
			return err
		}
	}
	return sc.Err()
}

func printTokens(analyzer *sudachi.Analyzer, text string) error {
	list, err := analyzer.Tokenize(text)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for i := 0; i < list.Len(); i++ {
		m := list.Get(i)
		pos, err := m.PartOfSpeech()
		if err != nil {
			return err
		}
		normalized, err := m.NormalizedForm()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%v\t%s\n", m.Surface(), pos, normalized)
	}
	fmt.Fprintln(w, "EOS")
	return nil
}
