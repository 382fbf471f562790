package tree

import (
	"slices"
	"testing"
)

func named(name string, fields ...Field) Value {
	return Mapping(append([]Field{{"name", Scalar(name)}}, fields...)...)
}

func TestMerge_ShapeMismatchTakesRight(t *testing.T) {
	t.Parallel()

	mapping := Mapping(Field{"x", Scalar(int64(1))})
	seq := Sequence(Scalar("a"))

	tests := []struct {
		name  string
		left  Value
		right Value
	}{
		{"scalar over scalar", Scalar(int64(5)), Scalar("five")},
		{"mapping over scalar", Scalar(int64(5)), mapping},
		{"scalar over mapping", mapping, Scalar(true)},
		{"sequence over mapping", mapping, seq},
		{"mapping over sequence", seq, mapping},
		{"absent over scalar", Scalar("x"), Value{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for _, depth := range []int{0, 1, 3, 10} {
				got := Merge(tt.left, tt.right, depth)
				if !got.Equal(tt.right) {
					t.Errorf("Merge(depth=%d) = %s, want %s", depth, got, tt.right)
				}
			}
		})
	}
}

func TestMerge_DepthZeroReplaces(t *testing.T) {
	t.Parallel()

	left := Mapping(Field{"a", Scalar(int64(1))}, Field{"b", Scalar(int64(2))})
	right := Mapping(Field{"b", Scalar(int64(3))})
	if got := Merge(left, right, 0); !got.Equal(right) {
		t.Errorf("mapping Merge(depth=0) = %s, want %s", got, right)
	}

	lseq := Sequence(named("a"), named("b"))
	rseq := Sequence(named("c"))
	if got := Merge(lseq, rseq, 0); !got.Equal(rseq) {
		t.Errorf("sequence Merge(depth=0) = %s, want %s", got, rseq)
	}

	if got := Merge(lseq, rseq, -1); !got.Equal(rseq) {
		t.Errorf("sequence Merge(depth=-1) = %s, want %s", got, rseq)
	}
}

func TestMerge_MappingKeepsLeftOnlyKeys(t *testing.T) {
	t.Parallel()

	left := Mapping(
		Field{"jira_url", Scalar("jira.example.com")},
		Field{"api_token", Scalar("secret")},
	)
	right := Mapping(Field{"jira_url", Scalar("jira.other.com")})

	got := Merge(left, right, 3)

	if v, ok := got.Get("api_token"); !ok || !v.Equal(Scalar("secret")) {
		t.Errorf("api_token = %s (present=%v), want \"secret\"", v, ok)
	}
	if v, _ := got.Get("jira_url"); !v.Equal(Scalar("jira.other.com")) {
		t.Errorf("jira_url = %s, want \"jira.other.com\"", v)
	}
	if want := []string{"jira_url", "api_token"}; !slices.Equal(got.Keys(), want) {
		t.Errorf("Keys() = %v, want %v", got.Keys(), want)
	}
}

func TestMerge_MappingAppendsRightOnlyKeys(t *testing.T) {
	t.Parallel()

	left := Mapping(Field{"a", Scalar(int64(1))})
	right := Mapping(Field{"z", Scalar(int64(26))}, Field{"b", Scalar(int64(2))})

	got := Merge(left, right, 1)

	if want := []string{"a", "z", "b"}; !slices.Equal(got.Keys(), want) {
		t.Errorf("Keys() = %v, want %v", got.Keys(), want)
	}
}

func TestMerge_MappingConflictRecurses(t *testing.T) {
	t.Parallel()

	left := Mapping(Field{"nested", Mapping(
		Field{"keep", Scalar("left")},
		Field{"over", Scalar("left")},
	)})
	right := Mapping(Field{"nested", Mapping(
		Field{"over", Scalar("right")},
	)})

	t.Run("depth 2 merges nested keys", func(t *testing.T) {
		t.Parallel()
		got := Merge(left, right, 2)
		want := Mapping(Field{"nested", Mapping(
			Field{"keep", Scalar("left")},
			Field{"over", Scalar("right")},
		)})
		if !got.Equal(want) {
			t.Errorf("Merge = %s, want %s", got, want)
		}
	})

	t.Run("depth 1 replaces nested mapping", func(t *testing.T) {
		t.Parallel()
		got := Merge(left, right, 1)
		if !got.Equal(right) {
			t.Errorf("Merge = %s, want %s", got, right)
		}
	})
}

func TestMerge_NamedSequence(t *testing.T) {
	t.Parallel()

	left := Sequence(named("a", Field{"v", Scalar(int64(1))}))
	right := Sequence(
		named("a", Field{"v", Scalar(int64(2))}),
		named("b", Field{"v", Scalar(int64(3))}),
	)
	want := Sequence(
		named("a", Field{"v", Scalar(int64(2))}),
		named("b", Field{"v", Scalar(int64(3))}),
	)

	for _, depth := range []int{1, 2, 3} {
		if got := Merge(left, right, depth); !got.Equal(want) {
			t.Errorf("Merge(depth=%d) = %s, want %s", depth, got, want)
		}
	}
}

func TestMerge_NamedSequenceOrdering(t *testing.T) {
	t.Parallel()

	left := Sequence(
		named("a"),
		named("b", Field{"keep", Scalar(true)}),
		Scalar("plain"),
		named("c"),
	)
	right := Sequence(
		named("b", Field{"extra", Scalar(int64(1))}),
		Scalar("plain"),
		named("d"),
	)

	got := Merge(left, right, 2)

	want := Sequence(
		named("a"),
		Scalar("plain"),
		named("c"),
		named("b", Field{"keep", Scalar(true)}, Field{"extra", Scalar(int64(1))}),
		Scalar("plain"),
		named("d"),
	)
	if !got.Equal(want) {
		t.Errorf("Merge = %s\nwant    %s", got, want)
	}
}

func TestMerge_NestedListReplacedPastBudget(t *testing.T) {
	t.Parallel()

	// root mapping -> list -> named item -> args list
	left := Mapping(Field{"servers", Sequence(
		named("lsp", Field{"args", Sequence(Scalar("--stdio"), Scalar("--log"))}),
	)})
	right := Mapping(Field{"servers", Sequence(
		named("lsp", Field{"args", Sequence(Scalar("--tcp"))}),
	)})

	got := Merge(left, right, 3)

	servers, _ := got.Get("servers")
	items := servers.Items()
	if len(items) != 1 {
		t.Fatalf("servers has %d items, want 1", len(items))
	}
	args, _ := items[0].Get("args")
	if want := Sequence(Scalar("--tcp")); !args.Equal(want) {
		t.Errorf("args = %s, want %s", args, want)
	}
}

func TestMerge_NameMustBeString(t *testing.T) {
	t.Parallel()

	left := Sequence(Mapping(Field{"name", Scalar(int64(1))}, Field{"v", Scalar("l")}))
	right := Sequence(Mapping(Field{"name", Scalar(int64(1))}, Field{"v", Scalar("r")}))

	got := Merge(left, right, 3)

	if got.Len() != 2 {
		t.Errorf("Merge produced %d items, want 2 (non-string names never match)", got.Len())
	}
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	left := Mapping(Field{"list", Sequence(named("a"), named("b"))})
	right := Mapping(Field{"list", Sequence(named("a", Field{"x", Scalar(int64(1))}))}, Field{"new", Scalar("n")})
	leftBefore := left.String()
	rightBefore := right.String()

	Merge(left, right, 3)

	if left.String() != leftBefore {
		t.Errorf("left mutated: %s, was %s", left, leftBefore)
	}
	if right.String() != rightBefore {
		t.Errorf("right mutated: %s, was %s", right, rightBefore)
	}
}
