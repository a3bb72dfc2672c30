package catalog

import (
	"github.com/alexisbeaulieu97/playground/internal/tokens"
)

// Document is the on-disk catalog format. Slices keep declaration order,
// which is the display order and decides every default.
type Document struct {
	Component string    `yaml:"component"`
	Demos     []DemoDoc `yaml:"demos" validate:"unique=Name,dive"`
}

// DemoDoc declares one component demo.
type DemoDoc struct {
	Name       string           `yaml:"name" validate:"required"`
	Component  string           `yaml:"component" validate:"required,component_name"`
	Defaults   tokens.Overrides `yaml:"defaults"`
	Approaches []ApproachDoc    `yaml:"approaches" validate:"required,min=1,unique=Key,dive"`
}

// ApproachDoc declares one styling approach offered by a demo.
type ApproachDoc struct {
	Key            string         `yaml:"key" validate:"required"`
	Label          string         `yaml:"label" validate:"required"`
	Kind           string         `yaml:"kind" validate:"required,approach_kind"`
	Recommendation string         `yaml:"recommendation" validate:"required,oneof=recommended not-recommended"`
	Props          map[string]any `yaml:"props"`
	Slots          []SlotDoc      `yaml:"slots" validate:"unique=Name,dive"`
}

// SlotDoc declares a customizable sub-element and its code template.
type SlotDoc struct {
	Name  string         `yaml:"name" validate:"required"`
	Props map[string]any `yaml:"props"`
	Code  string         `yaml:"code" validate:"required,code_template"`
}
