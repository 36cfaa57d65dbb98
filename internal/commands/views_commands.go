package commands

import (
	"fmt"

	"revu/internal/approval"
	"revu/internal/output"
	"revu/internal/ui"
	"revu/internal/views"
)

// RunViewsList displays all saved views.
func RunViewsList() {
	list, err := views.List()
	if err != nil {
		output.PrintError(err)
		return
	}

	output.Print(list, func() {
		if len(list) == 0 {
			fmt.Println("No views found.")
			return
		}
		fmt.Println()
		for _, v := range list {
			tag := ""
			if v.BuiltIn {
				tag = " (built-in)"
			}
			fmt.Printf("  %s%s\n", v.Name, tag)
			if v.Description != "" {
				fmt.Printf("    %s\n", v.Description)
			}
			fmt.Printf("    %s\n", describeView(&v))
			fmt.Println()
		}
	})
}

// RunViewsShow displays one view's definition.
func RunViewsShow(name string) {
	v, err := views.Get(name)
	if err != nil {
		output.PrintError(err)
		return
	}

	output.Print(v, func() {
		ui.ShowHeader("View " + v.Name)
		if v.Description != "" {
			fmt.Printf("  %s\n", v.Description)
		}
		fmt.Printf("  %s\n\n", describeView(v))
	})
}

// RunViewsSave creates or updates a view preset.
func RunViewsSave(name, desc, status, query, priority string, urgentFirst bool) {
	tab := approval.Status(status)
	if tab != "" && tab != approval.StatusAll && !approval.ValidStatus(tab) {
		output.PrintError(fmt.Errorf("unknown status %q", status))
		return
	}

	v := &views.View{
		Name:        name,
		Description: desc,
		Status:      tab,
		Query:       query,
		Priority:    approval.Priority(priority),
		SortUrgent:  urgentFirst,
	}
	if err := views.Save(v); err != nil {
		output.PrintError(err)
		return
	}

	output.Print(v, func() {
		ui.ShowSuccess("Saved view: %s", name)
	})
}

// RunViewsDelete removes a view preset.
func RunViewsDelete(name string) {
	if err := views.Delete(name); err != nil {
		output.PrintError(fmt.Errorf("delete view %q: %w", name, err))
		return
	}
	output.Print(map[string]string{"deleted": name}, func() {
		ui.ShowSuccess("Deleted view: %s", name)
	})
}

func describeView(v *views.View) string {
	s := "status=" + string(v.Status)
	if v.Status == "" {
		s = "status=all"
	}
	if v.Query != "" {
		s += " query=" + v.Query
	}
	if v.Priority != "" {
		s += " priority=" + string(v.Priority)
	}
	if v.SortUrgent {
		s += " urgent-first"
	}
	return s
}
