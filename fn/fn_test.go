package fn

import (
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinyj/lava/ers"
)

func TestShapes(t *testing.T) {
	t.Run("Runnable", func(t *testing.T) {
		var calls []string
		run := MakeRunnable(func() { calls = append(calls, "first") })
		run.AndThen(func() { calls = append(calls, "second") }).Run()
		assert.Equal(t, []string{"first", "second"}, calls)
	})
	t.Run("Supplier", func(t *testing.T) {
		count := 0
		sup := MakeSupplier(func() int { count++; return count })
		assert.Equal(t, 1, sup.Get())
		assert.Equal(t, 2, sup.Get())
	})
	t.Run("Condition", func(t *testing.T) {
		cond := MakeCondition(func() bool { return true })
		assert.True(t, cond.Test())
		assert.False(t, cond.Negate().Test())

		var bs BooleanSupplier = cond
		assert.True(t, bs.Test())
	})
	t.Run("Consumer", func(t *testing.T) {
		var seen []int
		con := MakeConsumer(func(in int) { seen = append(seen, in) })
		con.AndThen(func(in int) { seen = append(seen, in*10) }).Accept(4)
		assert.Equal(t, []int{4, 40}, seen)
	})
	t.Run("BiConsumer", func(t *testing.T) {
		var seen []string
		con := MakeBiConsumer(func(s string, n int) { seen = append(seen, s+strconv.Itoa(n)) })
		con.Accept("a", 1)
		con.Flip().Accept(2, "b")
		con.AndThen(func(s string, n int) { seen = append(seen, "then") }).Accept("c", 3)
		assert.Equal(t, []string{"a1", "b2", "c3", "then"}, seen)
	})
	t.Run("Function", func(t *testing.T) {
		double := UnaryOp(func(n int) int { return n * 2 })
		assert.Equal(t, 10, double.Apply(5))

		format := MakeFunction(strconv.Itoa)
		assert.Equal(t, "10", AndThen(double, format).Apply(5))
		assert.Equal(t, "10", Compose(format, double).Apply(5))
	})
	t.Run("BiFunction", func(t *testing.T) {
		sub := BinaryOp(func(a, b int) int { return a - b })
		assert.Equal(t, 3, sub.Apply(5, 2))
		assert.Equal(t, -3, sub.Flip().Apply(5, 2))
		assert.Equal(t, "3", BiAndThen(sub, strconv.Itoa).Apply(5, 2))

		repeat := MakeBiFunction(func(s string, n int) string {
			out := ""
			for range n {
				out += s
			}
			return out
		})
		assert.Equal(t, "abab", repeat.Flip().Apply(2, "ab"))
	})
	t.Run("Predicate", func(t *testing.T) {
		even := MakePredicate(func(n int) bool { return n%2 == 0 })
		positive := MakePredicate(func(n int) bool { return n > 0 })

		assert.True(t, even.Test(2))
		assert.True(t, even.Negate().Test(3))
		assert.True(t, even.And(positive).Test(4))
		assert.False(t, even.And(positive).Test(-4))
		assert.True(t, even.Or(positive).Test(3))
		assert.False(t, even.Or(positive).Test(-3))
	})
	t.Run("PredicateShortCircuit", func(t *testing.T) {
		called := false
		spy := MakePredicate(func(int) bool { called = true; return true })

		assert.False(t, False[int]().And(spy).Test(1))
		assert.True(t, True[int]().Or(spy).Test(1))
		assert.False(t, called)
	})
	t.Run("BiPredicate", func(t *testing.T) {
		less := Relation(func(a, b int) bool { return a < b })
		assert.True(t, less.Test(1, 2))
		assert.False(t, less.Flip().Test(1, 2))
		assert.True(t, less.Negate().Test(2, 1))
		assert.True(t, less.Or(Equals[int]()).Test(2, 2))
		assert.False(t, less.And(Equals[int]()).Test(2, 2))

		longer := MakeBiPredicate(func(s string, n int) bool { return len(s) > n })
		assert.True(t, longer.Flip().Test(1, "abc"))
	})
}

func TestFunctors(t *testing.T) {
	assert.NotPanics(t, NoOp().Run)
	assert.Equal(t, "x", Constant("x").Get())
	assert.Nil(t, Zero[*int]().Get())
	assert.Equal(t, 7, Identity[int]().Apply(7))
	assert.Equal(t, "7", ToString[int]().Apply(7))
	assert.Equal(t, "a", First[string, int]().Apply("a", 1))
	assert.Equal(t, 1, Second[string, int]().Apply("a", 1))
	assert.True(t, True[string]().Test("a"))
	assert.False(t, False[string]().Test("a"))
	assert.True(t, IsNull[*int]().Test(nil))
	assert.False(t, IsNull[*int]().Test(new(int)))
	assert.True(t, NonNull[*int]().Test(new(int)))
	assert.True(t, IsEqualTo("a").Test("a"))
	assert.False(t, IsEqualTo("a").Test("b"))
	assert.True(t, Equals[int]().Test(3, 3))
}

func TestExtend(t *testing.T) {
	t.Run("Ignore", func(t *testing.T) {
		count := 0
		run := MakeRunnable(func() { count++ })
		RunnableToConsumer[string](run).Accept("ignored")
		RunnableToBiConsumer[string, int](run).Accept("ignored", 1)
		assert.Equal(t, 2, count)

		var seen []string
		ConsumerToBiConsumer[string, int](func(s string) { seen = append(seen, s) }).Accept("kept", 1)
		assert.Equal(t, []string{"kept"}, seen)

		assert.Equal(t, 9, SupplierToFunction[string](Constant(9)).Apply("x"))
		assert.Equal(t, 9, SupplierToBiFunction[string, bool](Constant(9)).Apply("x", true))
		assert.Equal(t, "x", FunctionToBiFunction[string, int](Identity[string]()).Apply("x", 1))

		yes := MakeCondition(func() bool { return true })
		assert.True(t, ConditionToPredicate[int](yes).Test(0))
		assert.True(t, ConditionToBiPredicate[int, int](yes).Test(0, 0))
		assert.True(t, PredicateToBiPredicate[string, int](IsEqualTo("a")).Test("a", 100))
	})
	t.Run("NilPanics", func(t *testing.T) {
		identity := func(n int) int { return n }
		first := func(a, _ int) int { return a }
		for name, op := range map[string]func(){
			"RunnableToConsumer":     func() { RunnableToConsumer[int](nil) },
			"RunnableToBiConsumer":   func() { RunnableToBiConsumer[int, int](nil) },
			"ConsumerToBiConsumer":   func() { ConsumerToBiConsumer[int, int](nil) },
			"SupplierToFunction":     func() { SupplierToFunction[int, int](nil) },
			"SupplierToBiFunction":   func() { SupplierToBiFunction[int, int, int](nil) },
			"FunctionToBiFunction":   func() { FunctionToBiFunction[int, int, int](nil) },
			"ConditionToPredicate":   func() { ConditionToPredicate[int](nil) },
			"ConditionToBiPredicate": func() { ConditionToBiPredicate[int, int](nil) },
			"PredicateToBiPredicate": func() { PredicateToBiPredicate[int, int](nil) },
			"fn.AndThen":             func() { AndThen[int, int, int](UnaryOp(identity), nil) },
			"fn.Compose":             func() { Compose[int, int, int](UnaryOp(identity), nil) },
			"fn.BiAndThen":           func() { BiAndThen[int, int, int, int](BinaryOp(first), nil) },
			"fn.Runnable.AndThen":    func() { MakeRunnable(func() {}).AndThen(nil) },
			"fn.Consumer.AndThen":    func() { MakeConsumer(func(int) {}).AndThen(nil) },
			"fn.BiConsumer.AndThen":  func() { MakeBiConsumer(func(int, int) {}).AndThen(nil) },
			"fn.Predicate.And":       func() { MakePredicate(func(int) bool { return true }).And(nil) },
			"fn.Predicate.Or":        func() { MakePredicate(func(int) bool { return true }).Or(nil) },
			"fn.BiPredicate.And":     func() { Relation(func(int, int) bool { return true }).And(nil) },
			"fn.BiPredicate.Or":      func() { Relation(func(int, int) bool { return true }).Or(nil) },
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
	})
}

func TestFlipProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	concat := MakeBiFunction(func(s string, n int) string { return s + strconv.Itoa(n) })
	properties.Property("flipped arguments produce the same result", prop.ForAll(
		func(s string, n int) bool { return concat.Flip().Apply(n, s) == concat.Apply(s, n) },
		gen.AlphaString(), gen.Int(),
	))
	properties.Property("flipping twice is the original", prop.ForAll(
		func(s string, n int) bool { return concat.Flip().Flip().Apply(s, n) == concat.Apply(s, n) },
		gen.AlphaString(), gen.Int(),
	))

	properties.TestingRun(t)
}
