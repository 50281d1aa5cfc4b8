package main

import (
	"fmt"
	"sort"

	"github.com/zwave-protocol/zwave-go/pkg/specparse"
)

// DocModel holds every command class to document, merged from one or
// more catalogs.
type DocModel struct {
	Classes []*ClassDoc
	ByID    map[uint8]*ClassDoc
}

// ClassDoc is a command class plus the catalog it came from.
type ClassDoc struct {
	*specparse.RawCommandClass
	Source string
}

// BuildDocModel loads the catalogs in order. A class ID defined by two
// catalogs is an error.
func BuildDocModel(paths []string) (*DocModel, error) {
	m := &DocModel{ByID: make(map[uint8]*ClassDoc)}
	for _, path := range paths {
		cat, err := specparse.LoadCatalog(path)
		if err != nil {
			return nil, err
		}
		for i := range cat.CommandClasses {
			cc := &cat.CommandClasses[i]
			if prev, dup := m.ByID[cc.ID]; dup {
				return nil, fmt.Errorf("class 0x%02X defined in %s and %s", cc.ID, prev.Source, path)
			}
			doc := &ClassDoc{RawCommandClass: cc, Source: path}
			m.ByID[cc.ID] = doc
			m.Classes = append(m.Classes, doc)
		}
	}

	sort.Slice(m.Classes, func(i, j int) bool { return m.Classes[i].ID < m.Classes[j].ID })
	for _, c := range m.Classes {
		sort.Slice(c.Commands, func(i, j int) bool { return c.Commands[i].ID < c.Commands[j].ID })
	}
	return m, nil
}
