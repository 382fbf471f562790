package tree

import (
	"reflect"
	"slices"
	"testing"
)

func TestFromTOML(t *testing.T) {
	t.Parallel()

	data := map[string]any{
		"jira_url": "jira.example.com",
		"timeout":  int64(30),
		"servers": []map[string]any{
			{"name": "a", "port": int64(1)},
		},
		"tags": []any{"x", int64(2)},
	}

	v := FromTOML(data)

	if v.Kind() != KindMapping {
		t.Fatalf("Kind() = %s, want mapping", v.Kind())
	}
	if want := []string{"jira_url", "servers", "tags", "timeout"}; !slices.Equal(v.Keys(), want) {
		t.Errorf("Keys() = %v, want %v", v.Keys(), want)
	}

	servers, _ := v.Get("servers")
	if servers.Kind() != KindSequence || servers.Len() != 1 {
		t.Fatalf("servers = %s, want a one-element sequence", servers)
	}
	if name, ok := servers.Items()[0].Name(); !ok || name != "a" {
		t.Errorf("servers[0].Name() = %q, %v; want \"a\", true", name, ok)
	}

	tags, _ := v.Get("tags")
	if want := Sequence(Scalar("x"), Scalar(int64(2))); !tags.Equal(want) {
		t.Errorf("tags = %s, want %s", tags, want)
	}
}

func TestName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		v      Value
		want   string
		wantOK bool
	}{
		{"string name", Mapping(Field{"name", Scalar("db")}), "db", true},
		{"numeric name", Mapping(Field{"name", Scalar(int64(1))}), "", false},
		{"table name", Mapping(Field{"name", Mapping(Field{"x", Scalar("db")})}), "", false},
		{"no name", Mapping(Field{"port", Scalar(int64(1))}), "", false},
		{"not a mapping", Scalar("db"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := tt.v.Name()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Name() = %q, %v; want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestInterface_RoundTrip(t *testing.T) {
	t.Parallel()

	data := map[string]any{
		"a": "b",
		"n": map[string]any{"x": true},
		"l": []any{int64(1), map[string]any{"name": "z"}},
	}

	got := FromTOML(data).Interface()
	if !reflect.DeepEqual(got, data) {
		t.Errorf("Interface() = %#v, want %#v", got, data)
	}
}

func TestInterface_DropsAbsent(t *testing.T) {
	t.Parallel()

	v := Mapping(Field{"set", Scalar("x")}, Field{"unset", Value{}})

	got, ok := v.Interface().(map[string]any)
	if !ok {
		t.Fatalf("Interface() returned %T, want map[string]any", v.Interface())
	}
	if _, present := got["unset"]; present {
		t.Error("absent value should not be emitted")
	}
	if got["set"] != "x" {
		t.Errorf("set = %v, want x", got["set"])
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"same scalar", Scalar("x"), Scalar("x"), true},
		{"different scalar type", Scalar(int64(1)), Scalar(1.0), false},
		{"absent", Value{}, Scalar(nil), true},
		{
			"mapping order ignored",
			Mapping(Field{"a", Scalar(1)}, Field{"b", Scalar(2)}),
			Mapping(Field{"b", Scalar(2)}, Field{"a", Scalar(1)}),
			true,
		},
		{
			"mapping missing key",
			Mapping(Field{"a", Scalar(1)}),
			Mapping(Field{"b", Scalar(1)}),
			false,
		},
		{"sequence order matters", Sequence(Scalar(1), Scalar(2)), Sequence(Scalar(2), Scalar(1)), false},
		{"kind differs", Sequence(), Mapping(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("%s.Equal(%s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMapping_RepeatedKey(t *testing.T) {
	t.Parallel()

	v := Mapping(Field{"a", Scalar(1)}, Field{"b", Scalar(2)}, Field{"a", Scalar(3)})

	if want := []string{"a", "b"}; !slices.Equal(v.Keys(), want) {
		t.Errorf("Keys() = %v, want %v", v.Keys(), want)
	}
	if got, _ := v.Get("a"); !got.Equal(Scalar(3)) {
		t.Errorf("a = %s, want 3", got)
	}
}
