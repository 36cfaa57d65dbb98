package views

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"revu/internal/approval"
)

// View is a named, reusable filter preset for the workflow list.
type View struct {
	Name        string            `yaml:"name" json:"name"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
	Status      approval.Status   `yaml:"status,omitempty" json:"status,omitempty"`
	Query       string            `yaml:"query,omitempty" json:"query,omitempty"`
	Priority    approval.Priority `yaml:"priority,omitempty" json:"priority,omitempty"`
	SortUrgent  bool              `yaml:"sort_urgent,omitempty" json:"sortUrgent,omitempty"`
	BuiltIn     bool              `yaml:"-" json:"builtIn,omitempty"`
}

// Apply runs the preset against a workflow list.
func (v *View) Apply(workflows []approval.Workflow) []approval.Workflow {
	out := approval.FilterWorkflows(workflows, v.Status, v.Query, v.Priority)
	if v.SortUrgent {
		out = approval.SortByPriority(out)
	}
	return out
}

// builtinViews are the default presets every install gets.
var builtinViews = []View{
	{
		Name:        "needs-review",
		Description: "Everything still waiting on a reviewer",
		Status:      approval.StatusPending,
		SortUrgent:  true,
		BuiltIn:     true,
	},
	{
		Name:        "in-revision",
		Description: "Content sent back with requested changes",
		Status:      approval.StatusChangesRequested,
		BuiltIn:     true,
	},
	{
		Name:        "urgent-only",
		Description: "Urgent items across all statuses",
		Status:      approval.StatusAll,
		Priority:    approval.PriorityUrgent,
		BuiltIn:     true,
	},
}

// viewsDirFunc returns the views directory (~/.revu/views).
// It's a variable so tests can override it.
var viewsDirFunc = func() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".revu", "views")
}

// EnsureBuiltins writes built-in view presets to disk if they don't exist.
func EnsureBuiltins() error {
	dir := viewsDirFunc()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, v := range builtinViews {
		path := filepath.Join(dir, v.Name+".yml")
		if _, err := os.Stat(path); err == nil {
			continue // already exists
		}
		if err := saveViewFile(path, &v); err != nil {
			return err
		}
	}
	return nil
}

// List returns all views (built-in + user-defined).
func List() ([]View, error) {
	if err := EnsureBuiltins(); err != nil {
		return nil, err
	}

	dir := viewsDirFunc()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var views []View
	for _, e := range entries {
		if e.IsDir() || (!strings.HasSuffix(e.Name(), ".yml") && !strings.HasSuffix(e.Name(), ".yaml")) {
			continue
		}
		v, err := loadViewFile(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		markBuiltIn(v)
		views = append(views, *v)
	}
	return views, nil
}

// Get returns a view by name.
func Get(name string) (*View, error) {
	if err := EnsureBuiltins(); err != nil {
		return nil, err
	}

	path := filepath.Join(viewsDirFunc(), name+".yml")
	v, err := loadViewFile(path)
	if err != nil {
		path = filepath.Join(viewsDirFunc(), name+".yaml")
		v, err = loadViewFile(path)
		if err != nil {
			return nil, fmt.Errorf("view %q not found", name)
		}
	}
	markBuiltIn(v)
	return v, nil
}

// Save writes a view preset to disk.
func Save(v *View) error {
	if v.Name == "" {
		return fmt.Errorf("view name is required")
	}
	if err := os.MkdirAll(viewsDirFunc(), 0755); err != nil {
		return err
	}
	return saveViewFile(filepath.Join(viewsDirFunc(), v.Name+".yml"), v)
}

// Delete removes a view preset.
func Delete(name string) error {
	path := filepath.Join(viewsDirFunc(), name+".yml")
	if err := os.Remove(path); err != nil {
		path = filepath.Join(viewsDirFunc(), name+".yaml")
		return os.Remove(path)
	}
	return nil
}

func markBuiltIn(v *View) {
	for _, b := range builtinViews {
		if b.Name == v.Name {
			v.BuiltIn = true
			return
		}
	}
}

func loadViewFile(path string) (*View, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var v View
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func saveViewFile(path string, v *View) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
