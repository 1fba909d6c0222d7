package datefield

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pedrohavay/datefield/pattern"
)

// LoadGrammars walks dir for *.yml and *.yaml grammar files and registers
// one GrammarType per file. It returns the names it registered.
func (r *Registry) LoadGrammars(dir string) ([]string, error) {
	var names []string
	walk := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(d.Name())
		if ext != ".yml" && ext != ".yaml" {
			return nil
		}
		g, err := loadGrammarFile(path, strings.TrimSuffix(d.Name(), ext))
		if err != nil {
			return err
		}
		if err := r.Register(NewGrammarType(g)); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		names = append(names, g.Name)
		return nil
	}
	if err := filepath.WalkDir(dir, walk); err != nil {
		return names, err
	}
	return names, nil
}

func loadGrammarFile(path, name string) (*pattern.Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return pattern.ParseGrammar(name, f)
}
