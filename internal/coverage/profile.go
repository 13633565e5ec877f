// Package coverage reads go test cover profiles as collections of covered
// items for the reporter's end-of-run coverage check.
package coverage

import (
	"fmt"
	"sort"
	"sync"

	"golang.org/x/tools/cover"

	"github.com/AndreyAkinshin/conreport/pkg/reporter"
)

// Profile is a lazily loaded cover profile. Its covered items are the files
// with at least one executed block. The file is read on first use, which for
// a reporter is the end of the run, after go test has written it.
type Profile struct {
	path string

	once sync.Once
	keys reporter.Keys
	err  error
}

// NewProfile creates a Profile for the cover profile at path.
func NewProfile(path string) *Profile {
	return &Profile{path: path}
}

// Len returns the number of covered files. A missing or malformed profile
// counts as zero; Err reports why.
func (p *Profile) Len() int {
	p.load()
	return p.keys.Len()
}

// Keys returns the covered file names, sorted.
func (p *Profile) Keys() []string {
	p.load()
	result := make([]string, 0, len(p.keys))
	for k := range p.keys {
		result = append(result, k)
	}
	sort.Strings(result)
	return result
}

// Err returns the error encountered while loading the profile, if any.
func (p *Profile) Err() error {
	p.load()
	return p.err
}

func (p *Profile) load() {
	p.once.Do(func() {
		p.keys = reporter.NewKeys()
		profiles, err := cover.ParseProfiles(p.path)
		if err != nil {
			p.err = fmt.Errorf("read cover profile: %w", err)
			return
		}
		for _, prof := range profiles {
			for _, block := range prof.Blocks {
				if block.Count > 0 {
					p.keys.Add(prof.FileName)
					break
				}
			}
		}
	})
}

var _ reporter.CoveredItems = (*Profile)(nil)
