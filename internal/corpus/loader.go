package corpus

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed data/*.json
var dataFS embed.FS

var (
	loadOnce   sync.Once
	loadedSur  []Surah
	loadedWrds []Word
	loadErr    error
)

// Surahs returns the embedded surah corpus, sorted by surah number.
// The returned slice is shared; callers must treat it as read-only.
func Surahs() ([]Surah, error) {
	load()
	return loadedSur, loadErr
}

// Words returns the embedded vocabulary list.
// The returned slice is shared; callers must treat it as read-only.
func Words() ([]Word, error) {
	load()
	return loadedWrds, loadErr
}

// SurahByNumber returns the surah with the given number.
func SurahByNumber(number int) (Surah, error) {
	surahs, err := Surahs()
	if err != nil {
		return Surah{}, err
	}
	for _, s := range surahs {
		if s.Number == number {
			return s, nil
		}
	}
	return Surah{}, fmt.Errorf("surah %d not in corpus", number)
}

func load() {
	loadOnce.Do(func() {
		loadedSur, loadErr = loadSurahs()
		if loadErr != nil {
			return
		}
		loadedWrds, loadErr = loadWords()
	})
}

func loadSurahs() ([]Surah, error) {
	raw, err := validated("data/surahs.json", "data/surahs.schema.json")
	if err != nil {
		return nil, err
	}

	var surahs []Surah
	if err := json.Unmarshal(raw, &surahs); err != nil {
		return nil, fmt.Errorf("decode surahs: %w", err)
	}
	sort.Slice(surahs, func(i, j int) bool { return surahs[i].Number < surahs[j].Number })
	return surahs, nil
}

func loadWords() ([]Word, error) {
	raw, err := validated("data/words.json", "data/words.schema.json")
	if err != nil {
		return nil, err
	}

	var words []Word
	if err := json.Unmarshal(raw, &words); err != nil {
		return nil, fmt.Errorf("decode words: %w", err)
	}

	seen := make(map[string]bool, len(words))
	for _, w := range words {
		if seen[w.ID] {
			return nil, fmt.Errorf("duplicate word id %q", w.ID)
		}
		seen[w.ID] = true
	}
	return words, nil
}

// validated reads an embedded document and checks it against its JSON
// schema before handing the raw bytes back for decoding.
func validated(docPath, schemaPath string) ([]byte, error) {
	schemaBytes, err := dataFS.ReadFile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("read schema %s: %w", schemaPath, err)
	}
	var schemaParsed any
	if err := json.Unmarshal(schemaBytes, &schemaParsed); err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", schemaPath, err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := "schema://" + schemaPath
	if err := c.AddResource(schemaURL, schemaParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", schemaPath, err)
	}

	raw, err := dataFS.ReadFile(docPath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", docPath, err)
	}
	var docParsed any
	if err := json.Unmarshal(raw, &docParsed); err != nil {
		return nil, fmt.Errorf("parse %s: %w", docPath, err)
	}

	if err := compiled.Validate(docParsed); err != nil {
		return nil, fmt.Errorf("validate %s: %w", docPath, err)
	}
	return raw, nil
}
