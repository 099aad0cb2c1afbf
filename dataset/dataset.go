// Package dataset groups flat catalog items into the named dataset
// collections presented to the user for selection.
package dataset

import (
	"fmt"
	"sort"

	"github.com/westchamp24/tnm-download-cli/catalog"
)

// Dataset is a named logical grouping of catalog items sharing a
// dataset-name tag. An item belonging to several datasets appears in each
// of them; the same file may therefore be counted in multiple summaries.
type Dataset struct {
	Name  string
	Items []catalog.Item
}

// TotalSize sums the member item sizes, treating an absent size as 0.
func (d Dataset) TotalSize() int64 {
	var total int64
	for _, item := range d.Items {
		total += item.SizeInBytes
	}
	return total
}

// Label renders the summary line shown in the selection prompt.
func (d Dataset) Label() string {
	return fmt.Sprintf("%s | %d items @ %s", d.Name, len(d.Items), HumanSize(d.TotalSize()))
}

// Resolve groups catalog items by dataset membership. Every membership name
// on an item contributes that item to the corresponding dataset, creating
// the dataset on first encounter. The returned slice is sorted by name.
// An empty input yields an empty (nil) result.
func Resolve(items []catalog.Item) []Dataset {
	index := make(map[string]int)
	var datasets []Dataset

	for _, item := range items {
		for _, name := range item.Datasets {
			i, ok := index[name]
			if !ok {
				i = len(datasets)
				index[name] = i
				datasets = append(datasets, Dataset{Name: name})
			}
			datasets[i].Items = append(datasets[i].Items, item)
		}
	}

	sort.Slice(datasets, func(i, j int) bool {
		return datasets[i].Name < datasets[j].Name
	})
	return datasets
}

var sizeUnits = []string{" bytes", " KB", " MB", " GB", " TB", " PB", " EB"}

// HumanSize renders a byte count using binary scaling: the value is shifted
// right by 10 bits per unit step until it drops below 1024 or units run out.
func HumanSize(bytes int64) string {
	unit := 0
	for bytes >= 1024 && unit < len(sizeUnits)-1 {
		bytes >>= 10
		unit++
	}
	return fmt.Sprintf("%d%s", bytes, sizeUnits[unit])
}
