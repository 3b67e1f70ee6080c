package split

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSplittable_Accessors(t *testing.T) {
	rd := strings.NewReader("payload")
	wr := bytes.NewBuffer(nil)

	s := New(rd, wr)
	require.Same(t, rd, s.Reader())
	require.Same(t, wr, s.Writer())

	// what the accessors expose is exactly what a split transfers
	r, w := s.Split()
	require.Same(t, rd, r.Reader())
	require.Same(t, wr, w.Writer())
}

func TestSplittable_IsPairOf(t *testing.T) {
	r1, w1 := New(strings.NewReader("first"), bytes.NewBuffer(nil)).Split()
	r2, w2 := New(strings.NewReader("second"), bytes.NewBuffer(nil)).Split()

	for _, testcase := range []struct {
		name  string
		read  *ReadHalf[*strings.Reader, *bytes.Buffer]
		write *WriteHalf[*strings.Reader, *bytes.Buffer]
		wants bool
	}{
		{
			name:  "FirstPair",
			read:  r1,
			write: w1,
			wants: true,
		},
		{
			name:  "SecondPair",
			read:  r2,
			write: w2,
			wants: true,
		},
		{
			name:  "CrossedFirstReadSecondWrite",
			read:  r1,
			write: w2,
			wants: false,
		},
		{
			name:  "CrossedSecondReadFirstWrite",
			read:  r2,
			write: w1,
			wants: false,
		},
	} {
		t.Run(testcase.name, func(t *testing.T) {
			require.Equal(t, testcase.wants, testcase.read.IsPairOf(testcase.write))
			// the check is symmetric
			require.Equal(t, testcase.wants, testcase.write.IsPairOf(testcase.read))
		})
	}
}

func TestSplittable_IsPairOf_EqualContents(t *testing.T) {
	// two endpoints built from identical zero-size values still split into
	// distinct pairs; identity comes from the key's allocation, not from
	// what the sides hold
	r1, w1 := New(struct{}{}, struct{}{}).Split()
	r2, w2 := New(struct{}{}, struct{}{}).Split()

	require.True(t, r1.IsPairOf(w1))
	require.True(t, r2.IsPairOf(w2))
	require.False(t, r1.IsPairOf(w2))
	require.False(t, r2.IsPairOf(w1))
}

func TestSplittable_Unsplit_RoundTrip(t *testing.T) {
	rd := strings.NewReader("payload")
	wr := bytes.NewBuffer(nil)

	r, w := New(rd, wr).Split()
	restored := r.Unsplit(w)

	require.Same(t, rd, restored.Reader())
	require.Same(t, wr, restored.Writer())

	// a fresh split mints a fresh key: the spent halves match nothing and
	// the new pair matches only itself
	r2, w2 := restored.Split()
	require.True(t, r2.IsPairOf(w2))
	require.False(t, r.IsPairOf(w2))
	require.False(t, r2.IsPairOf(w))
}

func TestSplittable_Unsplit_NotAPair(t *testing.T) {
	r1, w1 := New(strings.NewReader("first"), bytes.NewBuffer(nil)).Split()
	r2, w2 := New(strings.NewReader("second"), bytes.NewBuffer(nil)).Split()

	require.PanicsWithValue(t, "split: not a pair", func() {
		_ = r1.Unsplit(w2)
	})
	require.PanicsWithValue(t, "split: not a pair", func() {
		_ = w1.Unsplit(r2)
	})

	// a failed Unsplit consumes nothing; the true pairs still reassemble
	require.True(t, r1.IsPairOf(w1))
	require.NotNil(t, r1.Unsplit(w1))
	require.NotNil(t, w2.Unsplit(r2))
}

func TestSplittable_UseAfterSplit(t *testing.T) {
	s := New(strings.NewReader("payload"), bytes.NewBuffer(nil))
	_, _ = s.Split()

	require.PanicsWithValue(t, "split: Splittable already split", func() {
		_, _ = s.Split()
	})
	require.PanicsWithValue(t, "split: use of a split Splittable", func() {
		_ = s.Reader()
	})
	require.PanicsWithValue(t, "split: use of a split Splittable", func() {
		_ = s.Writer()
	})
}

func TestSplittable_UseAfterUnsplit(t *testing.T) {
	r, w := New(strings.NewReader("payload"), bytes.NewBuffer(nil)).Split()
	_ = r.Unsplit(w)

	require.PanicsWithValue(t, "split: use of a spent ReadHalf", func() {
		_ = r.Reader()
	})
	require.PanicsWithValue(t, "split: use of a spent WriteHalf", func() {
		_ = w.Writer()
	})
	require.PanicsWithValue(t, "split: use of a spent ReadHalf", func() {
		_ = r.Unsplit(w)
	})
	require.False(t, r.IsPairOf(w))
}

func TestSplittable_ConcurrentHalves(t *testing.T) {
	const chunks = 1024

	rd := strings.NewReader(strings.Repeat("ping", chunks))
	wr := bytes.NewBuffer(nil)

	r, w := New[io.Reader, io.Writer](rd, wr).Split()

	var wg sync.WaitGroup

	wg.Add(2)

	go func() {
		defer wg.Done()

		p := make([]byte, 64)

		for {
			if _, err := r.Reader().Read(p); err != nil {
				return
			}
		}
	}()

	go func() {
		defer wg.Done()

		for i := 0; i < chunks; i++ {
			_, _ = w.Writer().Write([]byte("pong"))
		}
	}()

	wg.Wait()

	require.True(t, r.IsPairOf(w))
	require.Equal(t, chunks*len("pong"), wr.Len())

	s := r.Unsplit(w)
	require.Same(t, wr, s.Writer())
}
