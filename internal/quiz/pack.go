// Package quiz loads externally-authored quiz packs and grades attempts
// against them. Packs are read-only JSON content; grading never mutates them.
package quiz

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Question is a single multiple-choice question.
type Question struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answer_index"`
}

// Pack is a quiz pack: a titled set of questions for one competency.
type Pack struct {
	Title      string     `json:"title"`
	Competency string     `json:"competency"`
	Level      string     `json:"level"`
	Questions  []Question `json:"questions"`
}

// LoadPack reads and validates a single quiz pack file.
func LoadPack(path string) (Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pack{}, fmt.Errorf("read quiz pack: %w", err)
	}

	if err := validatePack(data); err != nil {
		return Pack{}, fmt.Errorf("quiz pack %s: %w", filepath.Base(path), err)
	}

	var p Pack
	if err := json.Unmarshal(data, &p); err != nil {
		return Pack{}, fmt.Errorf("decode quiz pack %s: %w", filepath.Base(path), err)
	}
	return p, nil
}

// LoadPacks reads every .json pack in dir, skipping files that fail to parse
// or validate. A missing directory yields no packs, not an error.
func LoadPacks(dir string) []Pack {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var packs []Pack
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".json") {
			continue
		}
		p, err := LoadPack(filepath.Join(dir, e.Name()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: skipping quiz pack %s: %v\n", e.Name(), err)
			continue
		}
		packs = append(packs, p)
	}
	return packs
}
