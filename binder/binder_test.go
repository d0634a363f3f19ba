package binder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinyj/lava/ers"
)

func counter() (func() int, *int) {
	count := 0
	return func() int { count++; return count }, &count
}

func TestConsumer(t *testing.T) {
	t.Run("Bind", func(t *testing.T) {
		var seen []int
		run := BindConsumer(func(n int) { seen = append(seen, n) }).Bind(7)
		assert.Empty(t, seen)
		run.Run()
		run()
		assert.Equal(t, []int{7, 7}, seen)
	})
	t.Run("LinkTo", func(t *testing.T) {
		var seen []int
		next, count := counter()
		run := BindConsumer(func(n int) { seen = append(seen, n) }).LinkTo(next)
		assert.Equal(t, 0, *count)
		run()
		run()
		assert.Equal(t, []int{1, 2}, seen)
	})
	t.Run("AndThen", func(t *testing.T) {
		var seen []string
		con := BindConsumer(func(s string) { seen = append(seen, s) }).
			AndThen(func(s string) { seen = append(seen, strings.ToUpper(s)) })
		con.Accept("a")
		assert.Equal(t, []string{"a", "A"}, seen)
	})
	t.Run("Map", func(t *testing.T) {
		var seen []int
		b := BindConsumer(func(n int) { seen = append(seen, n) })
		MapConsumer(b, func(s string) int { return len(s) }).Accept("four")
		MapConsumer2(b, func(a, c int) int { return a * c }).Accept(3, 5)
		assert.Equal(t, []int{4, 15}, seen)
	})
	t.Run("Bound", func(t *testing.T) {
		var seen []int
		b := BindConsumer(func(n int) { seen = append(seen, n) })
		b.Bound().Accept(1)
		assert.Equal(t, []int{1}, seen)
	})
}

func TestBiConsumer(t *testing.T) {
	record := func() (BiConsumer[string, int], *[]string) {
		var seen []string
		return BindBiConsumer(func(s string, n int) { seen = append(seen, s+strconv.Itoa(n)) }), &seen
	}
	t.Run("Bind", func(t *testing.T) {
		b, seen := record()
		b.Bind("a", 1)()
		b.BindFirst("b").Accept(2)
		b.BindSecond(3).Accept("c")
		b.Flip().Accept(4, "d")
		assert.Equal(t, []string{"a1", "b2", "c3", "d4"}, *seen)
	})
	t.Run("Link", func(t *testing.T) {
		b, seen := record()
		var order []string
		x := func() string { order = append(order, "x"); return "x" }
		y := func() int { order = append(order, "y"); return len(order) }

		run := b.Link(x, y)
		assert.Empty(t, order)
		run()
		run()
		b.LinkFirst(x).Accept(0)
		b.LinkSecond(y).Accept("z")
		assert.Equal(t, []string{"x", "y", "x", "y", "x", "y"}, order)
		assert.Equal(t, []string{"x2", "x4", "x0", "z6"}, *seen)
	})
	t.Run("Map", func(t *testing.T) {
		b, seen := record()
		MapBiConsumer(b, strings.ToUpper, func(n int) int { return -n }).Accept("a", 1)
		MapBiConsumerFirst(b, func(n int) string { return fmt.Sprint(n) }).Accept(1, 2)
		MapBiConsumerSecond(b, func(s string) int { return len(s) }).Accept("c", "abc")
		assert.Equal(t, []string{"A-1", "12", "c3"}, *seen)
	})
	t.Run("AndThen", func(t *testing.T) {
		b, seen := record()
		calls := 0
		b.AndThen(func(string, int) { calls++ }).Accept("a", 1)
		assert.Equal(t, []string{"a1"}, *seen)
		assert.Equal(t, 1, calls)
	})
}

func TestFunction(t *testing.T) {
	double := BindFunction(func(n int) int { return n * 2 })
	t.Run("Bind", func(t *testing.T) {
		assert.Equal(t, 8, double.Bind(4).Get())
		assert.Equal(t, 8, double.Apply(4))
		assert.Equal(t, 8, double.Bound()(4))
	})
	t.Run("LinkTo", func(t *testing.T) {
		next, count := counter()
		sup := double.LinkTo(next)
		assert.Equal(t, 0, *count)
		assert.Equal(t, 2, sup())
		assert.Equal(t, 4, sup())
	})
	t.Run("Map", func(t *testing.T) {
		assert.Equal(t, 6, MapFunction(double, func(s string) int { return len(s) }).Apply("abc"))
		assert.Equal(t, 14, MapFunction2(double, func(a, b int) int { return a + b }).Apply(3, 4))
		assert.Equal(t, "10", FunctionAndThen(double, strconv.Itoa).Apply(5))
	})
}

func TestBiFunction(t *testing.T) {
	sub := BindBiFunction(func(a, b int) int { return a - b })
	t.Run("Bind", func(t *testing.T) {
		assert.Equal(t, 7, sub.Bind(10, 3).Get())
		assert.Equal(t, 7, sub.BindFirst(10).Apply(3))
		assert.Equal(t, 7, sub.BindSecond(3).Apply(10))
		assert.Equal(t, -7, sub.Flip().Apply(10, 3))
		assert.Equal(t, 7, sub.Bound().Apply(10, 3))
	})
	t.Run("BindFirstCurriesAgain", func(t *testing.T) {
		assert.Equal(t, 7, sub.BindFirst(10).Bind(3).Get())
	})
	t.Run("Link", func(t *testing.T) {
		next, _ := counter()
		sup := sub.Link(next, next)
		assert.Equal(t, -1, sup())
		assert.Equal(t, -1, sup())
		assert.Equal(t, 10-5, sub.LinkSecond(next).Apply(10))
		assert.Equal(t, 6-10, sub.LinkFirst(next).Apply(10))
	})
	t.Run("Map", func(t *testing.T) {
		length := func(s string) int { return len(s) }
		assert.Equal(t, 2, MapBiFunction(sub, length, length).Apply("abcd", "ef"))
		assert.Equal(t, 3, MapBiFunctionFirst(sub, length).Apply("abcd", 1))
		assert.Equal(t, 2, MapBiFunctionSecond(sub, length).Apply(4, "ef"))
		assert.Equal(t, "7", BiFunctionAndThen(sub, strconv.Itoa).Apply(10, 3))
	})
}

func TestPredicate(t *testing.T) {
	even := BindPredicate(func(n int) bool { return n%2 == 0 })
	t.Run("Bind", func(t *testing.T) {
		assert.True(t, even.Bind(4).Test())
		assert.False(t, even.Bind(3).Test())
		assert.True(t, even.Negate().Test(3))
		assert.True(t, even.Bound().Test(2))
	})
	t.Run("LinkTo", func(t *testing.T) {
		next, _ := counter()
		cond := even.LinkTo(next)
		assert.False(t, cond())
		assert.True(t, cond())
	})
	t.Run("Map", func(t *testing.T) {
		assert.True(t, MapPredicate(even, func(s string) int { return len(s) }).Test("ab"))
		assert.False(t, MapPredicate2(even, func(a, b int) int { return a + b }).Test(1, 2))
	})
	t.Run("TestFirstSecond", func(t *testing.T) {
		assert.True(t, TestFirst[int, string](even).Test(2, "x"))
		assert.False(t, TestFirst[int, string](even).Test(1, "x"))
		assert.True(t, TestSecond[string, int](even).Test("x", 2))
		assert.False(t, TestSecond[string, int](even).Test("x", 1))
	})
}

func TestBiPredicate(t *testing.T) {
	less := BindBiPredicate(func(a, b int) bool { return a < b })
	t.Run("Bind", func(t *testing.T) {
		assert.True(t, less.Bind(1, 2).Test())
		assert.True(t, less.BindFirst(1).Test(2))
		assert.True(t, less.BindSecond(2).Test(1))
		assert.False(t, less.Flip().Test(1, 2))
		assert.False(t, less.Negate().Test(1, 2))
		assert.True(t, less.Bound().Test(1, 2))
	})
	t.Run("Link", func(t *testing.T) {
		next, _ := counter()
		assert.True(t, less.Link(next, next)())
		assert.True(t, less.LinkFirst(next).Test(10))
		assert.False(t, less.LinkSecond(next).Test(10))
	})
	t.Run("Map", func(t *testing.T) {
		length := func(s string) int { return len(s) }
		assert.True(t, MapBiPredicate(less, length, length).Test("a", "ab"))
		assert.False(t, MapBiPredicateFirst(less, length).Test("abc", 2))
		assert.True(t, MapBiPredicateSecond(less, length).Test(2, "abc"))
	})
}

func TestLavaBridge(t *testing.T) {
	t.Run("PanicsBecomeErrors", func(t *testing.T) {
		boom := errors.New("boom")
		b := BindFunction(func(n int) int {
			if n < 0 {
				panic(boom)
			}
			return n
		})
		out, err := b.Lava().Apply(-1)
		assert.ErrorIs(t, err, boom)
		assert.Zero(t, out)

		out, err = b.Lava().Apply(3)
		require.NoError(t, err)
		assert.Equal(t, 3, out)
	})
	t.Run("NonErrorPanicValues", func(t *testing.T) {
		b := BindBiPredicate(func(a, b int) bool { panic("nope") })
		_, err := b.Lava().Test(1, 2)
		assert.ErrorIs(t, err, ers.ErrRecoveredPanic)
	})
	t.Run("Consumers", func(t *testing.T) {
		var seen []int
		require.NoError(t, BindConsumer(func(n int) { seen = append(seen, n) }).Lava().Accept(1))
		require.NoError(t, BindBiConsumer(func(a, b int) { seen = append(seen, a+b) }).Lava().Accept(1, 2))
		assert.Equal(t, []int{1, 3}, seen)
	})
	t.Run("Predicate", func(t *testing.T) {
		ok, err := BindPredicate(func(s string) bool { return s == "" }).Lava().Test("")
		require.NoError(t, err)
		assert.True(t, ok)
	})
	t.Run("BiFunction", func(t *testing.T) {
		out, err := BindBiFunction(func(a, b int) int { return a * b }).Lava().Apply(3, 4)
		require.NoError(t, err)
		assert.Equal(t, 12, out)
	})
}

func TestNilFunctions(t *testing.T) {
	for name, op := range map[string]func(){
		"binder.BindConsumer":           func() { BindConsumer[int](nil) },
		"binder.BindBiConsumer":         func() { BindBiConsumer[int, int](nil) },
		"binder.BindFunction":           func() { BindFunction[int, int](nil) },
		"binder.BindBiFunction":         func() { BindBiFunction[int, int, int](nil) },
		"binder.BindPredicate":          func() { BindPredicate[int](nil) },
		"binder.BindBiPredicate":        func() { BindBiPredicate[int, int](nil) },
		"binder.Consumer.LinkTo":        func() { BindConsumer(func(int) {}).LinkTo(nil) },
		"binder.BiFunction.LinkFirst":   func() { BindBiFunction(func(a, b int) int { return a }).LinkFirst(nil) },
		"binder.BiPredicate.LinkSecond": func() { BindBiPredicate(func(a, b int) bool { return true }).LinkSecond(nil) },
		"binder.MapFunction":            func() { MapFunction[string](BindFunction(func(n int) int { return n }), nil) },
		"binder.BindLavaConsumer":       func() { BindLavaConsumer[int](nil) },
		"binder.BindLavaBiFunction":     func() { BindLavaBiFunction[int, int, int](nil) },
		"binder.LavaBiPredicate.Link":   func() { BindLavaBiPredicate(func(a, b int) (bool, error) { return true, nil }).Link(nil, nil) },
		"binder.LavaFunctionAndThen": func() {
			LavaFunctionAndThen[int, int, int](BindLavaFunction(func(n int) (int, error) { return n, nil }), nil)
		},
		"binder.MapLavaBiConsumerSecond": func() { MapLavaBiConsumerSecond[string](BindLavaBiConsumer(func(a, b int) error { return nil }), nil) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				err, ok := recover().(error)
				require.True(t, ok)
				assert.ErrorIs(t, err, ers.ErrNilFunction)
				assert.Contains(t, err.Error(), name)
			}()
			op()
		})
	}
}

func TestCurryingProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	concat := BindBiFunction(func(s string, n int) string { return s + strconv.Itoa(n) })
	properties.Property("binding both arguments matches a direct call", prop.ForAll(
		func(s string, n int) bool { return concat.Bind(s, n).Get() == concat.Apply(s, n) },
		gen.AlphaString(), gen.Int(),
	))
	properties.Property("binding the first then the second matches a direct call", prop.ForAll(
		func(s string, n int) bool { return concat.BindFirst(s).Apply(n) == concat.Apply(s, n) },
		gen.AlphaString(), gen.Int(),
	))
	properties.Property("binding the second then the first matches a direct call", prop.ForAll(
		func(s string, n int) bool { return concat.BindSecond(n).Apply(s) == concat.Apply(s, n) },
		gen.AlphaString(), gen.Int(),
	))
	properties.Property("flipped binders bind the swapped argument", prop.ForAll(
		func(s string, n int) bool { return concat.Flip().BindFirst(n).Apply(s) == concat.Apply(s, n) },
		gen.AlphaString(), gen.Int(),
	))

	less := BindBiPredicate(func(a, b int) bool { return a < b })
	properties.Property("predicates bound on the first argument match a direct test", prop.ForAll(
		func(a, b int) bool { return less.BindFirst(a).Test(b) == less.Test(a, b) },
		gen.Int(), gen.Int(),
	))
	properties.Property("predicates bound on the second argument match a direct test", prop.ForAll(
		func(a, b int) bool { return less.BindSecond(b).Test(a) == less.Test(a, b) },
		gen.Int(), gen.Int(),
	))
	properties.Property("predicates bound on both arguments match a direct test", prop.ForAll(
		func(a, b int) bool { return less.Bind(a, b).Test() == less.Test(a, b) },
		gen.Int(), gen.Int(),
	))
	properties.Property("flipped predicates test the swapped arguments", prop.ForAll(
		func(a, b int) bool { return less.Flip().Test(b, a) == less.Test(a, b) },
		gen.Int(), gen.Int(),
	))
	properties.Property("negated predicates disagree with the original", prop.ForAll(
		func(a, b int) bool { return less.Negate().Test(a, b) != less.Test(a, b) },
		gen.Int(), gen.Int(),
	))

	properties.TestingRun(t)
}
