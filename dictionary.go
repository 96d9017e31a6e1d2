// Package sudachi wires the dictionary store, input-text rewriters,
// OOV providers, connection-cost edits, and path rewriters of
// spec.md §§4–6 into the single tokenize pipeline of spec.md §5.
package sudachi

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-sudachi/sudachi/chardef"
	"github.com/go-sudachi/sudachi/config"
	"github.com/go-sudachi/sudachi/dic"
	"github.com/go-sudachi/sudachi/input"
	"github.com/go-sudachi/sudachi/lattice"
	"github.com/go-sudachi/sudachi/plugin/connectcost"
	"github.com/go-sudachi/sudachi/plugin/inputtext"
	"github.com/go-sudachi/sudachi/plugin/oov"
	"github.com/go-sudachi/sudachi/plugin/pathrewrite"
)

// Dictionary is a loaded binary dictionary plus the plugin chain
// resolved from a Config (spec.md §5): every Analyzer built from it
// shares the same grammar/lexicon/trie state and reruns the same
// plugin chain per call.
type Dictionary struct {
	dic     *dic.Dictionary
	config  *config.Config
	charCat *chardef.Map

	inputRewriters []input.Rewriter
	oovProviders   []lattice.OOVProvider
	pathRewriters  []pathrewrite.Rewriter
}

// NewDictionary loads cfg's system and user dictionaries, the
// character-category map, and every configured plugin, applying
// connection-cost edits to the grammar once up front.
func NewDictionary(cfg *config.Config) (*Dictionary, error) {
	if cfg.SystemDict == "" {
		return nil, fmt.Errorf("sudachi: config has no systemDict")
	}

	d, err := dic.LoadSystemFile(cfg.SystemDict)
	if err != nil {
		return nil, fmt.Errorf("sudachi: loading system dictionary: %w", err)
	}

	for _, p := range cfg.UserDicts {
		storage, err := dic.OpenStorageFile(p)
		if err != nil {
			return nil, fmt.Errorf("sudachi: opening user dictionary %s: %w", p, err)
		}
		if err := d.AddUser(storage); err != nil {
			return nil, fmt.Errorf("sudachi: loading user dictionary %s: %w", p, err)
		}
	}

	charDefFile, err := os.Open(cfg.CharacterDefinitionFile)
	if err != nil {
		return nil, fmt.Errorf("sudachi: opening character definition: %w", err)
	}
	defer charDefFile.Close()
	charCat, err := chardef.Load(charDefFile, cfg.CharacterDefinitionFile)
	if err != nil {
		return nil, fmt.Errorf("sudachi: loading character definition: %w", err)
	}
	d.Grammar().SetCharCategory(charCat)

	jd := &Dictionary{dic: d, config: cfg, charCat: charCat}

	for _, raw := range cfg.ConnectionCostPlugins {
		if err := jd.applyConnectCostPlugin(raw); err != nil {
			return nil, err
		}
	}
	for _, raw := range cfg.InputTextPlugins {
		r, err := jd.buildInputTextPlugin(raw)
		if err != nil {
			return nil, err
		}
		jd.inputRewriters = append(jd.inputRewriters, r)
	}
	for _, raw := range cfg.OOVProviderPlugins {
		p, err := jd.buildOOVProvider(raw)
		if err != nil {
			return nil, err
		}
		jd.oovProviders = append(jd.oovProviders, p)
	}
	for _, raw := range cfg.PathRewritePlugins {
		r, err := jd.buildPathRewritePlugin(raw)
		if err != nil {
			return nil, err
		}
		jd.pathRewriters = append(jd.pathRewriters, r)
	}

	return jd, nil
}

// Grammar returns the loaded grammar (POS table, connection matrix).
func (jd *Dictionary) Grammar() *dic.Grammar { return jd.dic.Grammar() }

// Close releases every backing Storage.
func (jd *Dictionary) Close() error { return jd.dic.Close() }

type pluginClass struct {
	Class string `json:"class"`
}

func classOf(raw json.RawMessage) (string, error) {
	var c pluginClass
	if err := json.Unmarshal(raw, &c); err != nil {
		return "", err
	}
	if c.Class == "" {
		return "", fmt.Errorf("sudachi: plugin settings missing \"class\" field")
	}
	return c.Class, nil
}

func (jd *Dictionary) applyConnectCostPlugin(raw json.RawMessage) error {
	class, err := classOf(raw)
	if err != nil {
		return err
	}
	switch class {
	case "InhibitConnectionPlugin":
		var settings struct {
			InhibitedPair [][2]int16 `json:"inhibitedPair"`
		}
		if err := json.Unmarshal(raw, &settings); err != nil {
			return err
		}
		p := &connectcost.InhibitPlugin{}
		for _, pair := range settings.InhibitedPair {
			p.Pairs = append(p.Pairs, connectcost.Pair{Left: pair[0], Right: pair[1]})
		}
		p.Apply(jd.Grammar())
		return nil
	default:
		return fmt.Errorf("sudachi: unknown connectionCostPlugin class %q", class)
	}
}

func (jd *Dictionary) buildInputTextPlugin(raw json.RawMessage) (input.Rewriter, error) {
	class, err := classOf(raw)
	if err != nil {
		return nil, err
	}
	switch class {
	case "DefaultInputTextPlugin":
		var settings struct {
			RewriteDef string `json:"rewriteDef"`
		}
		if err := json.Unmarshal(raw, &settings); err != nil {
			return nil, err
		}
		path := jd.config.CompletePath(settings.RewriteDef)
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		table, err := inputtext.LoadRewriteTable(f, path)
		if err != nil {
			return nil, err
		}
		return &inputtext.DefaultRewriter{Table: table}, nil
	case "ProlongedSoundMarkPlugin":
		return inputtext.NewProlongedSoundMarkRewriter(), nil
	case "IgnoreYomiganaPlugin":
		return inputtext.NewIgnoreYomiganaRewriter(jd.charCat), nil
	default:
		return nil, fmt.Errorf("sudachi: unknown inputTextPlugin class %q", class)
	}
}

func (jd *Dictionary) buildOOVProvider(raw json.RawMessage) (lattice.OOVProvider, error) {
	class, err := classOf(raw)
	if err != nil {
		return nil, err
	}
	switch class {
	case "MeCabOovPlugin":
		var settings struct {
			CharDef string `json:"charDef"`
			UnkDef  string `json:"unkDef"`
		}
		if err := json.Unmarshal(raw, &settings); err != nil {
			return nil, err
		}
		path := jd.config.CompletePath(settings.UnkDef)
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return oov.LoadUnkDef(f, path, jd.charCat, jd.Grammar())
	case "SimpleOovPlugin":
		var settings struct {
			OOVPOS [6]string `json:"oovPOS"`
			LeftID int16     `json:"leftId"`
			RightID int16    `json:"rightId"`
			Cost    int16    `json:"cost"`
		}
		if err := json.Unmarshal(raw, &settings); err != nil {
			return nil, err
		}
		p, err := oov.NewSimpleProvider(jd.Grammar())
		if err != nil {
			return nil, err
		}
		if settings.OOVPOS != ([6]string{}) {
			posID, ok := jd.Grammar().POSID(dic.POS(settings.OOVPOS))
			if !ok {
				return nil, fmt.Errorf("sudachi: unknown part of speech %v", settings.OOVPOS)
			}
			p.POSID = posID
			p.Left, p.Right, p.Cost = settings.LeftID, settings.RightID, settings.Cost
		}
		return p, nil
	case "RegexOovPlugin":
		var settings struct {
			Regex  string    `json:"regex"`
			OOVPOS [6]string `json:"oovPOS"`
			LeftID int16     `json:"leftId"`
			RightID int16    `json:"rightId"`
			Cost    int16    `json:"cost"`
		}
		if err := json.Unmarshal(raw, &settings); err != nil {
			return nil, err
		}
		return oov.NewRegexProvider(settings.Regex, settings.LeftID, settings.RightID, settings.Cost, settings.OOVPOS, jd.Grammar())
	default:
		return nil, fmt.Errorf("sudachi: unknown oovProviderPlugin class %q", class)
	}
}

func (jd *Dictionary) buildPathRewritePlugin(raw json.RawMessage) (pathrewrite.Rewriter, error) {
	class, err := classOf(raw)
	if err != nil {
		return nil, err
	}
	switch class {
	case "JoinNumericPlugin":
		var settings struct {
			EnableNormalize *bool `json:"enableNormalize"`
		}
		if err := json.Unmarshal(raw, &settings); err != nil {
			return nil, err
		}
		enable := true
		if settings.EnableNormalize != nil {
			enable = *settings.EnableNormalize
		}
		return pathrewrite.NewNumericJoinPlugin(jd.Grammar(), enable)
	case "JoinKatakanaOovPlugin":
		return pathrewrite.NewKatakanaOOVJoinPlugin(jd.Grammar())
	default:
		return nil, fmt.Errorf("sudachi: unknown pathRewritePlugin class %q", class)
	}
}
