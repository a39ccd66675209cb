package sigils

import (
	"reflect"
	"testing"
)

func TestPlaceholders(t *testing.T) {
	for s, expected := range map[string][]int{
		"I am %, and I am % years old.": {5, 17},
		"100%% sure":                   nil,
		"%":                            {0},
		"% and %% and %":               {0, 13},
	} {
		if actual := Placeholders(s); !reflect.DeepEqual(actual, expected) {
			t.Fatalf("%q: expected %v, got %v", s, expected, actual)
		}
	}
}
