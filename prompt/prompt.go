// Package prompt implements the interactive dataset selection step.
package prompt

import (
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/westchamp24/tnm-download-cli/dataset"
)

// SelectDatasets presents a multi-select of dataset summaries and returns
// the chosen subset. An empty selection is valid and returns an empty slice.
func SelectDatasets(datasets []dataset.Dataset) ([]dataset.Dataset, error) {
	labels := make([]string, len(datasets))
	for i, d := range datasets {
		labels[i] = d.Label()
	}

	var picked []string
	question := &survey.MultiSelect{
		Message:  "What dataset(s) do you want to download",
		Options:  labels,
		PageSize: 15,
	}
	if err := survey.AskOne(question, &picked); err != nil {
		return nil, err
	}

	return Filter(datasets, SelectionNames(picked)), nil
}

// SelectionNames recovers dataset names from chosen summary labels.
// Labels have the form "<name> | <n> items @ <size>".
func SelectionNames(labels []string) []string {
	names := make([]string, 0, len(labels))
	for _, label := range labels {
		name, _, _ := strings.Cut(label, "|")
		names = append(names, strings.TrimSpace(name))
	}
	return names
}

// Filter returns the datasets whose names appear in the selection,
// preserving the input order.
func Filter(datasets []dataset.Dataset, names []string) []dataset.Dataset {
	selected := make(map[string]bool, len(names))
	for _, n := range names {
		selected[n] = true
	}

	var chosen []dataset.Dataset
	for _, d := range datasets {
		if selected[d.Name] {
			chosen = append(chosen, d)
		}
	}
	return chosen
}
