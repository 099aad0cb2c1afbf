package prompt

import (
	"reflect"
	"testing"

	"github.com/westchamp24/tnm-download-cli/catalog"
	"github.com/westchamp24/tnm-download-cli/dataset"
)

func TestSelectionNames(t *testing.T) {
	labels := []string{
		"Lidar Point Cloud (LPC) | 12 items @ 3 GB",
		"NED 1/3 arc-second | 4 items @ 120 MB",
	}
	want := []string{"Lidar Point Cloud (LPC)", "NED 1/3 arc-second"}

	if got := SelectionNames(labels); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSelectionNames_Empty(t *testing.T) {
	if got := SelectionNames(nil); len(got) != 0 {
		t.Errorf("expected no names, got %v", got)
	}
}

func TestFilter(t *testing.T) {
	datasets := []dataset.Dataset{
		{Name: "A", Items: []catalog.Item{{Title: "a"}}},
		{Name: "B", Items: []catalog.Item{{Title: "b"}}},
		{Name: "C", Items: []catalog.Item{{Title: "c"}}},
	}

	tests := []struct {
		name  string
		names []string
		want  []string
	}{
		{name: "subset preserves order", names: []string{"C", "A"}, want: []string{"A", "C"}},
		{name: "empty selection", names: nil, want: nil},
		{name: "unknown name ignored", names: []string{"Z"}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chosen := Filter(datasets, tt.names)
			var gotNames []string
			for _, d := range chosen {
				gotNames = append(gotNames, d.Name)
			}
			if !reflect.DeepEqual(gotNames, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, gotNames)
			}
		})
	}
}
