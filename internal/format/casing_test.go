package format

import "testing"

func TestSnakeCaseTable(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "My Item Name", want: "my_item_name"},
		{in: "Default Pickaxe", want: "default_pickaxe"},
		{in: "pickaxe", want: "pickaxe"},
		{in: "TNT", want: "t_n_t"},
		{in: "", want: ""},
		{in: "  Iron   Ore ", want: "iron_ore"},
	}
	for _, tc := range tests {
		if got := SnakeCase(tc.in); got != tc.want {
			t.Fatalf("SnakeCase(%q)=%q want=%q", tc.in, got, tc.want)
		}
	}
}
