package recipe

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YohanWijaya10/Nano-Challenge-01/internal/domain"
	"github.com/YohanWijaya10/Nano-Challenge-01/internal/logger"
	"github.com/YohanWijaya10/Nano-Challenge-01/internal/storage"
)

func quietLog() *logger.Logger { return logger.New(logger.LevelOff, nil) }

func fixtureRecipes() []domain.Recipe {
	return []domain.Recipe{
		domain.NewRecipe("r-1", "Nasi Goreng", []domain.Ingredient{
			{ID: "i-1", Name: "Rice", Amount: 200, Unit: "gr", Price: 5000},
			{ID: "i-2", Name: "Kecap Manis", Amount: 2, Unit: "tbsp", Price: 2500.5},
		}),
		domain.NewRecipe("r-2", "Es Teh", nil),
	}
}

var sampleText = []string{
	"Sugar", "", " padded ", "Crème brûlée", `quote "x"`, "123", "tbsp", "gr", "L",
}

// generateRecipes builds n recipes with up to maxIngredients ingredients each.
func generateRecipes(rng *rand.Rand, n, maxIngredients int) []domain.Recipe {
	recipes := make([]domain.Recipe, 0, n)
	for i := 0; i < n; i++ {
		count := rng.IntN(maxIngredients + 1)
		ings := make([]domain.Ingredient, 0, count)
		for j := 0; j < count; j++ {
			ings = append(ings, domain.Ingredient{
				ID:     fmt.Sprintf("ing-%d-%d", i, j),
				Name:   sampleText[rng.IntN(len(sampleText))],
				Amount: rng.IntN(10_000),
				Unit:   sampleText[rng.IntN(len(sampleText))],
				Price:  float64(rng.IntN(10_000_000)) / 100,
			})
		}
		name := sampleText[rng.IntN(len(sampleText))]
		if name == "" {
			name = "Untitled"
		}
		recipes = append(recipes, domain.NewRecipe(fmt.Sprintf("rec-%d", i), name, ings))
	}
	return recipes
}

func slots(t *testing.T) map[string]domain.Slot {
	t.Helper()
	log := quietLog()
	sqlite, err := storage.OpenSQLiteSlot(filepath.Join(t.TempDir(), "recipes.db"), log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close() })

	return map[string]domain.Slot{
		"memory": storage.NewMemorySlot(log),
		"file":   storage.NewFileSlot(t.TempDir(), log),
		"sqlite": sqlite,
	}
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewPCG(7, 11))

	for _, codec := range []Codec{JSONCodec{}, YAMLCodec{}} {
		for slotName, slot := range slots(t) {
			t.Run(codec.Name()+"/"+slotName, func(t *testing.T) {
				store := NewStore(slot, quietLog(), WithCodec(codec))
				for _, n := range []int{0, 1, 3, 12} {
					want := generateRecipes(rng, n, 6)
					require.NoError(t, store.Save(ctx, want))

					got, err := store.Load(ctx)
					require.NoError(t, err)
					assert.Equal(t, want, got, "round trip of %d recipes", n)
					assert.NoError(t, store.LastLoadIssue())
				}
			})
		}
	}
}

func TestRoundTripPreservesTotals(t *testing.T) {
	ctx := context.Background()
	store := NewStore(storage.NewMemorySlot(quietLog()), quietLog())

	want := fixtureRecipes()
	require.NoError(t, store.Save(ctx, want))
	got, err := store.Load(ctx)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, 7500.5, got[0].TotalPrice())
	assert.Equal(t, 0.0, got[1].TotalPrice())
}

func TestLoadEmptySlot(t *testing.T) {
	ctx := context.Background()

	for name, slot := range slots(t) {
		t.Run(name, func(t *testing.T) {
			store := NewStore(slot, quietLog())

			got, err := store.Load(ctx)
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Empty(t, got)

			// A zero-length blob is the same "no data yet" state.
			require.NoError(t, slot.Put(ctx, SlotKey, []byte{}))
			got, err = store.Load(ctx)
			require.NoError(t, err)
			assert.Empty(t, got)
			assert.NoError(t, store.LastLoadIssue())
		})
	}
}

func TestLoadCorruptedDataDegradesToEmpty(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		codec Codec
		blob  string
	}{
		{"json garbage", JSONCodec{}, "this is not json"},
		{"json truncated", JSONCodec{}, `[{"id":"r-1","name":"Soup"`},
		{"json wrong shape", JSONCodec{}, `{"id":"r-1"}`},
		{"json trailing data", JSONCodec{}, `[] []`},
		{"yaml wrong shape", YAMLCodec{}, "just a scalar"},
		{"yaml broken", YAMLCodec{}, "- id: [unclosed"},
		{"yaml infinite price", YAMLCodec{}, yamlBlob("1", ".inf")},
		{"yaml NaN price", YAMLCodec{}, yamlBlob("1", ".nan")},
		{"yaml negative price", YAMLCodec{}, yamlBlob("1", "-2.5")},
		{"yaml negative amount", YAMLCodec{}, yamlBlob("-3", "2.5")},
		{"yaml amount beyond int range", YAMLCodec{}, yamlBlob("1e30", "2.5")},
		{"json negative amount", JSONCodec{}, `[{"id":"r-1","name":"Soup","ingredients":[{"id":"i-1","name":"Salt","amount":-1,"unit":"gr","price":1}]}]`},
		{"json price beyond float range", JSONCodec{}, `[{"id":"r-1","name":"Soup","ingredients":[{"id":"i-1","name":"Salt","amount":1,"unit":"gr","price":1e400}]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := storage.NewMemorySlot(quietLog())
			require.NoError(t, slot.Put(ctx, SlotKey, []byte(tt.blob)))
			store := NewStore(slot, quietLog(), WithCodec(tt.codec))

			got, err := store.Load(ctx)
			require.NoError(t, err)
			assert.Empty(t, got)
			assert.ErrorIs(t, store.LastLoadIssue(), domain.ErrDecode)

			_, err = store.LoadStrict(ctx)
			assert.ErrorIs(t, err, domain.ErrDecode)
		})
	}
}

// yamlBlob is a one-recipe, one-ingredient YAML document with the given
// raw amount and price scalars.
func yamlBlob(amount, price string) string {
	return "- id: r-1\n" +
		"  name: Soup\n" +
		"  ingredients:\n" +
		"    - id: i-1\n" +
		"      name: Salt\n" +
		"      amount: " + amount + "\n" +
		"      unit: gr\n" +
		"      price: " + price + "\n"
}

func TestLoadIssueClearsAfterGoodLoad(t *testing.T) {
	ctx := context.Background()
	slot := storage.NewMemorySlot(quietLog())
	store := NewStore(slot, quietLog())

	require.NoError(t, slot.Put(ctx, SlotKey, []byte("{{{")))
	_, err := store.Load(ctx)
	require.NoError(t, err)
	require.Error(t, store.LastLoadIssue())

	require.NoError(t, store.Save(ctx, fixtureRecipes()))
	_, err = store.Load(ctx)
	require.NoError(t, err)
	assert.NoError(t, store.LastLoadIssue())
}

func TestSaveEncodeFailureLeavesSlotUntouched(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		price float64
	}{
		{"NaN", math.NaN()},
		{"infinite", math.Inf(1)},
		{"negative", -1},
	}

	for _, codec := range []Codec{JSONCodec{}, YAMLCodec{}} {
		for _, tt := range tests {
			t.Run(codec.Name()+"/"+tt.name, func(t *testing.T) {
				slot := storage.NewMemorySlot(quietLog())
				store := NewStore(slot, quietLog(), WithCodec(codec))

				require.NoError(t, store.Save(ctx, fixtureRecipes()))
				before, err := slot.Get(ctx, SlotKey)
				require.NoError(t, err)

				bad := []domain.Recipe{domain.NewRecipe("r-x", "Broken", []domain.Ingredient{
					{ID: "i-x", Name: "Void", Amount: 1, Unit: "gr", Price: tt.price},
				})}
				err = store.Save(ctx, bad)
				require.ErrorIs(t, err, domain.ErrEncode)

				after, err := slot.Get(ctx, SlotKey)
				require.NoError(t, err)
				assert.Equal(t, before, after)
			})
		}
	}
}

// failingSlot fails every operation.
type failingSlot struct{ err error }

func (f failingSlot) Get(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingSlot) Put(context.Context, string, []byte) error   { return f.err }

func TestSaveSurfacesSlotFailure(t *testing.T) {
	boom := errors.New("disk full")
	store := NewStore(failingSlot{err: boom}, quietLog())

	err := store.Save(context.Background(), fixtureRecipes())
	assert.ErrorIs(t, err, boom)
}

func TestLoadSlotFailureDegradesToEmpty(t *testing.T) {
	boom := errors.New("permission denied")
	store := NewStore(failingSlot{err: boom}, quietLog())

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.ErrorIs(t, store.LastLoadIssue(), boom)

	_, err = store.LoadStrict(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestSaveOverwritesPreviousList(t *testing.T) {
	ctx := context.Background()
	store := NewStore(storage.NewMemorySlot(quietLog()), quietLog())

	require.NoError(t, store.Save(ctx, fixtureRecipes()))
	require.NoError(t, store.Save(ctx, fixtureRecipes()[1:]))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "r-2", got[0].ID)
}

func TestEncodingGolden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)

	for _, codec := range []Codec{JSONCodec{}, YAMLCodec{}} {
		data, err := codec.Encode(fixtureRecipes())
		require.NoError(t, err)
		g.Assert(t, "recipes_"+codec.Name(), data)
	}
}

func TestEncodingOmitsTotal(t *testing.T) {
	data, err := JSONCodec{}.Encode(fixtureRecipes())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "total")
}

func TestCodecFor(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"", "json", false},
		{"json", "json", false},
		{"yaml", "yaml", false},
		{"yml", "yaml", false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := CodecFor(tt.name)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Name())
		})
	}
}
