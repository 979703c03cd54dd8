package ui

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// PickFiles shows a multiselect of conflicted files and returns the ones
// the user wants to resolve. All files start selected.
func PickFiles(files []string) ([]string, error) {
	selected := make([]string, len(files))
	copy(selected, files)

	var options []huh.Option[string]
	for _, file := range files {
		options = append(options, huh.NewOption(file, file).Selected(true))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select conflicted files to resolve:").
				Options(options...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		return nil, err
	}

	return selected, nil
}

// ConfirmWrite asks before overwriting resolved files on disk.
func ConfirmWrite(count int) (bool, error) {
	confirmed := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Write %d resolved file(s) and stage them?", count)).
				Affirmative("Write").
				Negative("Cancel").
				Value(&confirmed),
		),
	)

	if err := form.Run(); err != nil {
		return false, err
	}

	return confirmed, nil
}
