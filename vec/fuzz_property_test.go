package vec

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/bufkit/storage"
)

// validateVecInvariants checks the structural invariants that must hold
// after every operation, against a plain-slice model of the contents.
func validateVecInvariants(t *testing.T, v *Vec[int], model []int) {
	t.Helper()
	require.LessOrEqual(t, v.Len(), v.Cap(), "size must never exceed capacity")
	require.Equal(t, len(model), v.Len(), "size must match the model")
	for i, want := range model {
		got, err := v.At(i)
		require.NoError(t, err)
		require.Equal(t, want, got, "element %d diverged from the model", i)
	}
}

// Test_Fuzz_RandomOps_GuardInvariants drives a random sequence of container
// operations against a plain-slice model and validates the invariants after
// every step.
func Test_Fuzz_RandomOps_GuardInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42)) // Fixed seed for reproducibility
	budget := storage.NewBudget(0)
	v, err := NewWith[int](Options{Budget: budget})
	require.NoError(t, err)
	var model []int

	for i := 0; i < 2000; i++ {
		switch op := rng.Intn(8); op {
		case 0, 1, 2: // Append (weighted so the vec actually grows)
			val := rng.Intn(1000)
			require.NoError(t, v.Append(val), "step %d: append", i)
			model = append(model, val)

		case 3: // Insert at random position
			pos := rng.Intn(len(model) + 1)
			val := rng.Intn(1000)
			require.NoError(t, v.Insert(pos, val), "step %d: insert", i)
			model = append(model[:pos], append([]int{val}, model[pos:]...)...)

		case 4: // Erase at random position
			if len(model) > 0 {
				pos := rng.Intn(len(model))
				require.NoError(t, v.Erase(pos), "step %d: erase", i)
				model = append(model[:pos], model[pos+1:]...)
			}

		case 5: // Reserve
			require.NoError(t, v.Reserve(rng.Intn(256)), "step %d: reserve", i)

		case 6: // ShrinkToFit
			require.NoError(t, v.ShrinkToFit(), "step %d: shrink", i)

		case 7: // Overwrite in place
			if len(model) > 0 {
				pos := rng.Intn(len(model))
				val := rng.Intn(1000)
				require.NoError(t, v.SetAt(pos, val), "step %d: set", i)
				model[pos] = val
			}
		}

		validateVecInvariants(t, v, model)
	}

	// Budget accounting must balance once everything is released.
	v.Release()
	require.Equal(t, int64(0), budget.InUse(), "budget must balance after release")
}

// Test_Fuzz_CloneMoveSwap_GuardOwnership shuffles contents between several
// vecs through clone/move/swap and checks no block is ever shared or lost.
func Test_Fuzz_CloneMoveSwap_GuardOwnership(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	budget := storage.NewBudget(0)

	vecs := make([]*Vec[int], 4)
	models := make([][]int, 4)
	for i := range vecs {
		v, err := NewWith[int](Options{Budget: budget})
		require.NoError(t, err)
		vecs[i] = v
	}

	for step := 0; step < 500; step++ {
		a, b := rng.Intn(len(vecs)), rng.Intn(len(vecs))
		switch rng.Intn(4) {
		case 0: // Append to a
			val := rng.Intn(100)
			require.NoError(t, vecs[a].Append(val), "step %d", step)
			models[a] = append(models[a], val)

		case 1: // a = clone of b
			c, err := vecs[b].Clone()
			require.NoError(t, err, "step %d", step)
			vecs[a].Release()
			vecs[a] = c
			if a != b {
				models[a] = append([]int(nil), models[b]...)
			}

		case 2: // a takes over b
			vecs[a].MoveFrom(vecs[b])
			if a != b {
				models[a] = models[b]
				models[b] = nil
			}

		case 3: // swap
			vecs[a].Swap(vecs[b])
			models[a], models[b] = models[b], models[a]
		}

		for i, v := range vecs {
			validateVecInvariants(t, v, models[i])
		}
	}

	for _, v := range vecs {
		v.Release()
	}
	require.Equal(t, int64(0), budget.InUse(), "ownership shuffles must not leak or double-free")
}
