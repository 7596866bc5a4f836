package main

import (
	"fmt"
	"strings"

	"github.com/gogpu/effects"
)

// edit is one kind.field=value assignment from the command line.
type edit struct {
	kind  effects.Kind
	field string
	value string
}

type editList []edit

func (l *editList) String() string {
	var parts []string
	for _, e := range *l {
		parts = append(parts, fmt.Sprintf("%v.%s=%s", e.kind, e.field, e.value))
	}
	return strings.Join(parts, " ")
}

func (l *editList) Set(s string) error {
	e, err := parseEdit(s)
	if err != nil {
		return err
	}
	*l = append(*l, e)
	return nil
}

// apply writes every edit to set, stopping at the first failure.
func (l editList) apply(set *effects.Set) error {
	for _, e := range l {
		if _, err := set.SetNamed(e.kind, e.field, e.value); err != nil {
			return err
		}
	}
	return nil
}

func parseEdit(s string) (edit, error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok {
		return edit{}, fmt.Errorf("effect %q: want kind.field=value", s)
	}
	kindName, field, ok := strings.Cut(key, ".")
	if !ok {
		return edit{}, fmt.Errorf("effect %q: want kind.field=value", s)
	}
	k, err := effects.ParseKind(strings.TrimSpace(kindName))
	if err != nil {
		return edit{}, err
	}
	if _, err := effects.LookupField(k, strings.TrimSpace(field)); err != nil {
		return edit{}, err
	}
	return edit{kind: k, field: strings.TrimSpace(field), value: value}, nil
}

type kindList []effects.Kind

func (l *kindList) String() string {
	var parts []string
	for _, k := range *l {
		parts = append(parts, k.String())
	}
	return strings.Join(parts, ",")
}

func (l *kindList) Set(s string) error {
	k, err := effects.ParseKind(s)
	if err != nil {
		return err
	}
	*l = append(*l, k)
	return nil
}
