package xxmac

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/codahale/gubbins/assert"
)

const seed64 = 0x06cd630df7649871

//nolint:gochecknoglobals // test fixtures
var key128 = Uint128{Hi: seed64, Lo: ^uint64(seed64)}

func Example() {
	key := Uint128{Hi: 0x0123456789abcdef, Lo: 0xfedcba9876543210}

	// Authenticate a message in one shot.
	tag := Sum128([]byte("well this is a pickle"), key)

	// Or incrementally.
	mac := New128(key)
	_, _ = io.WriteString(mac, "well this ")
	_, _ = io.WriteString(mac, "is a pickle")

	fmt.Println(tag)
	fmt.Println(mac.Sum128() == tag)
	// Output:
	// ced859aab5d07194880400d57e1c00b1
	// true
}

func TestFixtures(t *testing.T) {
	t.Parallel()

	data := readFixture(t, "data")

	assert.Equal(t, "XXH3_64_HASH", uint64(0x10f621e6bb28ad40), Hash64(data))
	assert.Equal(t, "XXH3_64_SEEDED", uint64(0x1e231b1df0b53436), Hash64Seed(data, seed64))
	assert.Equal(t, "XXH3_128_HASH", "7d397b426b1cf22b10f621e6bb28ad40", Hash128(data).String())
	assert.Equal(t, "XXH3_128_SEEDED", "307d5c2f3eea06da1e231b1df0b53436",
		Hash128Seed(data, seed64).String())
	assert.Equal(t, "MAC64", uint64(0xc00c43a0c12dc69e), Sum64(data, seed64))
	assert.Equal(t, "MAC64_SHORT", uint64(0xf74e0e54b815b68a), Sum64(data[:100], seed64))
	assert.Equal(t, "MAC64_EMPTY", uint64(0xa54266496d13faca), Sum64(nil, 0))
	assert.Equal(t, "MAC128", "c9eae3573e640357ddb4936f408e7bd6", Sum128(data, key128).String())
	assert.Equal(t, "MAC128_SHORT", "354db78107efc2f4f1fc57f28d159e20",
		Sum128(data[:100], key128).String())
	assert.Equal(t, "MAC128_EMPTY", "a24e8df0d6cc2f263de33a16f1147261",
		Sum128(nil, Uint128{}).String())
}

func TestFixtures_Boundaries(t *testing.T) {
	t.Parallel()

	data := readFixture(t, "data")

	tests := []struct {
		n      int
		mac64  uint64
		mac128 string
	}{
		{n: MidsizeMax - 1, mac64: 0x3db89882b73f41a6, mac128: "9aee86c9ea1f348fba71d296ac2bab9b"},
		{n: MidsizeMax, mac64: 0x3b01ddf74aa89b28, mac128: "d3dbbb81b096320232880cc53f497523"},
		{n: MidsizeMax + 1, mac64: 0x74b7671dceae48c6, mac128: "72f650acbd2f8b441687b1df24f77537"},
	}

	for _, test := range tests {
		msg := data[:test.n]
		name := fmt.Sprintf("%d bytes", test.n)

		assert.Equal(t, "one-shot 64 "+name, test.mac64, Sum64(msg, seed64))
		assert.Equal(t, "one-shot 128 "+name, test.mac128, Sum128(msg, key128).String())

		m64, m128 := New64(seed64), New128(key128)
		_, _ = m64.Write(msg[:test.n/2])
		_, _ = m64.Write(msg[test.n/2:])
		_, _ = m128.Write(msg[:test.n/3])
		_, _ = m128.Write(msg[test.n/3:])

		assert.Equal(t, "streaming 64 "+name, test.mac64, m64.Sum64())
		assert.Equal(t, "streaming 128 "+name, test.mac128, m128.Sum128().String())
	}
}

func TestNewSecret_Fixture(t *testing.T) {
	t.Parallel()

	s := NewSecret(readFixture(t, "key"))
	want := readFixture(t, "secret_entropy")

	assert.Equal(t, "secret", want, s[:])
	assert.Equal(t, "id", "Xr9NPzGKxzU", s.String())
}

func TestNewSecret_Length(t *testing.T) {
	t.Parallel()

	for _, seed := range [][]byte{nil, {}, []byte("x"), bytes.Repeat([]byte("ok"), 1000)} {
		b, err := NewSecret(seed).MarshalBinary()
		if err != nil {
			t.Fatal(err)
		}

		assert.Equal(t, fmt.Sprintf("length for %d-byte seed", len(seed)), SecretSize, len(b))
	}

	assert.Equal(t, "nil and empty seeds", NewSecret(nil), NewSecret([]byte{}))
}

func TestNewSecret_Deterministic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "secrets", NewSecret([]byte("ok then")), NewSecret([]byte("ok then")))

	if *NewSecret([]byte("ok then")) == *NewSecret([]byte("ok then!")) {
		t.Error("different seeds produced the same secret")
	}
}

func TestSensitivity(t *testing.T) {
	t.Parallel()

	data := readFixture(t, "data")

	for _, n := range []int{1, 64, MidsizeMax, len(data)} {
		msg := append([]byte(nil), data[:n]...)
		orig64, orig128 := Sum64(msg, seed64), Sum128(msg, key128)

		for _, bit := range []int{0, 7, 8*n/2 + 3, 8*n - 1} {
			msg[bit/8] ^= 1 << (bit % 8)

			if Sum64(msg, seed64) == orig64 {
				t.Errorf("flipping message bit %d of %d bytes did not change the 64-bit MAC", bit, n)
			}

			if Sum128(msg, key128) == orig128 {
				t.Errorf("flipping message bit %d of %d bytes did not change the 128-bit MAC", bit, n)
			}

			msg[bit/8] ^= 1 << (bit % 8)
		}
	}

	for bit := 0; bit < 64; bit += 9 {
		if Sum64(data, seed64^(1<<bit)) == Sum64(data, seed64) {
			t.Errorf("flipping key bit %d did not change the 64-bit MAC", bit)
		}

		k := key128
		k.Hi ^= 1 << bit
		if Sum128(data, k) == Sum128(data, key128) {
			t.Errorf("flipping high key bit %d did not change the 128-bit MAC", bit)
		}

		k = key128
		k.Lo ^= 1 << bit
		if Sum128(data, k) == Sum128(data, key128) {
			t.Errorf("flipping low key bit %d did not change the 128-bit MAC", bit)
		}
	}
}

func TestVerify(t *testing.T) {
	t.Parallel()

	msg := []byte("well this is a pickle")
	key := Uint128{Hi: 0x0123456789abcdef, Lo: 0xfedcba9876543210}
	tag := Sum128(msg, key)

	assert.Equal(t, "valid 64-bit tag", true, Verify64(msg, 1, Sum64(msg, 1)))
	assert.Equal(t, "invalid 64-bit tag", false, Verify64(msg, 2, Sum64(msg, 1)))
	assert.Equal(t, "valid 128-bit tag", true, Verify128(msg, key, tag))

	tag.Lo ^= 1
	assert.Equal(t, "invalid 128-bit tag", false, Verify128(msg, key, tag))
}

func TestConcurrentUse(t *testing.T) {
	t.Parallel()

	data := readFixture(t, "data")
	want := Sum128(data, key128)

	var wg sync.WaitGroup

	results := make([]Uint128, 16)

	for i := range results {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			m := New128(key128)
			_, _ = io.Copy(m, bytes.NewReader(data))
			results[i] = m.Sum128()
		}(i)
	}

	wg.Wait()

	for i, got := range results {
		assert.Equal(t, fmt.Sprintf("result %d", i), want, got)
	}
}

func BenchmarkSum64(b *testing.B) {
	msg := make([]byte, 1024)
	b.SetBytes(int64(len(msg)))

	for i := 0; i < b.N; i++ {
		_ = Sum64(msg, seed64)
	}
}

func BenchmarkNewSecret(b *testing.B) {
	seed := []byte("a short, low-entropy fixture seed")

	for i := 0; i < b.N; i++ {
		_ = NewSecret(seed)
	}
}

func readFixture(t *testing.T, name string) []byte {
	t.Helper()

	b, err := os.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatal(err)
	}

	return b
}
