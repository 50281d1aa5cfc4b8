package main

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/zwave-protocol/zwave-go/pkg/specparse"
)

type fileData struct {
	Package string
	Classes []classData
}

type classData struct {
	GoName   string
	Const    string
	Name     string
	ID       uint8
	Version  uint8
	Comment  string
	Commands []commandData
}

type commandData struct {
	Const     string
	Name      string
	ID        uint8
	Since     uint8
	Direction string
}

var directionConsts = map[string]string{
	specparse.DirectionIn:   "dirIn",
	specparse.DirectionOut:  "dirOut",
	specparse.DirectionBoth: "dirBoth",
}

// Generate renders the constants and lookup tables for a validated catalog.
func Generate(cat *specparse.RawCatalog, pkg string) (string, error) {
	data := fileData{Package: pkg}
	consts := make(map[string]string)

	claim := func(name, owner string) error {
		if prev, ok := consts[name]; ok {
			return fmt.Errorf("%s and %s both map to identifier %s", prev, owner, name)
		}
		consts[name] = owner
		return nil
	}

	for _, cc := range cat.CommandClasses {
		goName := specparse.GoName(cc.Name)
		cd := classData{
			GoName:  goName,
			Const:   "Class" + goName,
			Name:    cc.Name,
			ID:      cc.ID,
			Version: cc.Version,
			Comment: classComment(cc),
		}
		if err := claim(cd.Const, cc.Name); err != nil {
			return "", err
		}

		for _, cmd := range cc.Commands {
			dir, ok := directionConsts[cmd.Direction]
			if !ok {
				return "", fmt.Errorf("%s %s: unknown direction %q", cc.Name, cmd.Name, cmd.Direction)
			}
			c := commandData{
				Const:     goName + "Cmd" + specparse.GoName(cmd.Name),
				Name:      cmd.Name,
				ID:        cmd.ID,
				Since:     cmd.Since,
				Direction: dir,
			}
			if err := claim(c.Const, cc.Name+" "+cmd.Name); err != nil {
				return "", err
			}
			cd.Commands = append(cd.Commands, c)
		}
		data.Classes = append(data.Classes, cd)
	}

	var b strings.Builder
	if err := fileTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("template: %w", err)
	}
	return b.String(), nil
}

func classComment(cc specparse.RawCommandClass) string {
	desc := strings.TrimSuffix(strings.TrimSpace(cc.Description), ".")
	if desc == "" {
		return cc.Name + " command class."
	}
	runes := []rune(desc)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes) + "."
}
