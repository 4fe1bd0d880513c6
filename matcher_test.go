package rematch

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type matchTest struct {
	Name    string
	Pattern string
	Input   string
	Want    bool
}

func runMatchTests(t *testing.T, tests []matchTest) {
	t.Helper()
	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			matcher, err := Compile(test.Pattern, nil)
			require.NoError(t, err)
			assert.Equal(t, test.Want, matcher.MatchLine(test.Input))
		})
	}
}

func TestMatchAtoms(t *testing.T) {
	runMatchTests(t, []matchTest{
		{"literal anywhere", "a", "xay", true},
		{"literal at the end", "C", "ABC", true},
		{"literal absent", "X", "ABC", false},
		{"any char", ".", "z", true},
		{"any char needs input", ".", "", false},
		{"word char letter", `\w`, "abc", true},
		{"word char underscore", `\w`, "_abc", true},
		{"word char digit", `\w`, "9xyz", true},
		{"word char absent", `\w`, "!!!", false},
		{"digit", `\d`, "123", true},
		{"digit absent", `\d`, "ABC", false},
		{"whitespace", `a\sb`, "a b", true},
		{"whitespace tab", `a\sb`, "a\tb", true},
		{"whitespace absent", `a\sb`, "a_b", false},
		{"escaped dot is literal", `\.`, "a.b", true},
		{"escaped dot does not match any", `\.`, "abc", false},
		{"sequence", `AB\d\dZZ`, "AB12ZZCD", true},
		{"sequence with any", `..\dA`, "A12A", true},
		{"digit then word", `\d apple`, "1 apple", true},
	})
}

func TestMatchAnchors(t *testing.T) {
	runMatchTests(t, []matchTest{
		{"start anchor at offset zero", "^abc", "abcxyz", true},
		{"start anchor rejects later offsets", "^abc", "xabc", false},
		{"start anchor prefix", "^log", "slog", false},
		{"end anchor at the end", "abc$", "xabc", true},
		{"end anchor rejects trailing text", "abc$", "abcx", false},
		{"both anchors exact", "^cat$", "cat", true},
		{"both anchors reject longer input", "^cat$", "a cat", false},
		{"end anchor mid input", "cat$", "a cat", true},
		{"caret mid pattern is literal", "x^y", "x^y", true},
		{"dollar mid pattern is literal", "a$b", "a$b", true},
	})
}

func TestMatchQuantifiers(t *testing.T) {
	runMatchTests(t, []matchTest{
		{"plus needs one", "a+", "", false},
		{"plus takes one", "a+", "a", true},
		{"plus takes many", "ca+ts", "caats", true},
		{"plus takes exactly one", "ca+ts", "cats", true},
		{"plus rejects zero", "ca+ts", "cts", false},
		{"star takes zero", "a*", "", true},
		{"star before literal run", "[abc]*test", "aabbcatest12", true},
		{"optional present", "dogs?", "dogs", true},
		{"optional absent", "dogs?", "dog", true},
		{"optional inside word", "colou?r", "color", true},
		{"optional inside word present", "colou?r", "colour", true},
		{"count below min", "a{2,3}", "a", false},
		{"count at min", "a{2,3}", "aa", true},
		{"count at max", "a{2,3}", "aaa", true},
		{"open count", `\d{2,}`, "12345", true},
		{"open count below min", `\d{2,}`, "1", false},
		{"zero min count", `\d{0,2}`, "123", true},
		{"exact count", "a{2}", "aa", true},
		{"exact count short", "a{2}", "ab", false},
	})
}

func TestMatchClasses(t *testing.T) {
	runMatchTests(t, []matchTest{
		{"member", "[aeiou]", "apple", true},
		{"no member", "[aeiou]", "xyz", false},
		{"negated hit", "[^xyz]", "a", true},
		{"negated miss", "[^xyz]", "x", false},
		{"negated run then literal", "[^xyz]*xtest", "aabbcaxtest12", true},
		{"negated run", "[^xyz]*test", "aabbcatest12", true},
	})
}

func TestMatchAlternation(t *testing.T) {
	runMatchTests(t, []matchTest{
		{"first branch", "(cat|dog)", "cat", true},
		{"second branch", "(cat|dog)", "dog", true},
		{"no branch", "(cat|dog)", "apple", false},
		{"branch inside sequence", "a(b|c)d", "abd", true},
		{"other branch inside sequence", "a(b|c)d", "acd", true},
		{"missing branch inside sequence", "a(b|c)d", "ad", false},
	})
}

func TestMatchBackreferences(t *testing.T) {
	runMatchTests(t, []matchTest{
		{"literal group", `(cat) and \1`, "cat and cat", true},
		{"literal group mismatch", `(cat) and \1`, "cat and dog", false},
		{"word group", `(\w+) and \1`, "cat and cat", true},
		{"word group other word", `(\w+) and \1`, "dog and dog", true},
		{"word group mismatch", `(\w+) and \1`, "cat and dog", false},
		{"whitespace separator", `(\w+)\s+\1`, "hello hello", true},
		{"whitespace separator mismatch", `(\w+)\s+\1`, "hello world", false},
		{"three groups reversed", `(\d+)-(\w+)-(\d+)\s+\3-\2-\1`, "123-abc-456 456-abc-123", true},
		{"three groups reversed mismatch", `(\d+)-(\w+)-(\d+)\s+\3-\2-\1`, "123-abc-456 456-def-123", false},
		{"two groups repeated", `(\d+) (\w+) squares and \1 \2 circles`, "3 red squares and 3 red circles", true},
		{"two groups repeated mismatch", `(\d+) (\w+) squares and \1 \2 circles`, "3 red squares and 4 red circles", false},
		{"three groups shuffled", `(\w+) (\w+) (\w+) and \3 \2 \1`, "one two three and three two one", true},
		{"three groups shuffled mismatch", `(\w+) (\w+) (\w+) and \3 \2 \1`, "one two three and three one two", false},
		{"reference before group", `\1(a)`, "aa", false},
		{"reference beyond declared groups", `(a) or \2`, "a or a", false},
	})
}

func TestMatchNestedBackreferences(t *testing.T) {
	runMatchTests(t, []matchTest{
		{
			"outer and inner group",
			`('(cat) and \2') is the same as \1`,
			"'cat and cat' is the same as 'cat and cat'",
			true,
		},
		{
			"inner mismatch",
			`('(cat) and \2') is the same as \1`,
			"'cat and dog' is the same as 'cat and dog'",
			false,
		},
	})
}

func TestFindLine(t *testing.T) {
	tests := []struct {
		Name     string
		Pattern  string
		Input    string
		Want     bool
		Captures []string
	}{
		{
			Name:     "first alternative wins the capture",
			Pattern:  "(a|ab)",
			Input:    "ab",
			Want:     true,
			Captures: []string{"a"},
		},
		{
			Name:     "groups in declaration order",
			Pattern:  "(cat) and (dog)",
			Input:    "cat and dog",
			Want:     true,
			Captures: []string{"cat", "dog"},
		},
		{
			Name:     "nested groups numbered by opening paren",
			Pattern:  `('(cat) and \2') is the same as \1`,
			Input:    "'cat and cat' is the same as 'cat and cat'",
			Want:     true,
			Captures: []string{"'cat and cat'", "cat"},
		},
		{
			Name:     "failed branch leaks no captures",
			Pattern:  "(foo)x|bar",
			Input:    "foobar",
			Want:     true,
			Captures: []string{""},
		},
		{
			Name:    "no match no captures",
			Pattern: "(cat)",
			Input:   "dog",
			Want:    false,
		},
	}
	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			matcher, err := Compile(test.Pattern, nil)
			require.NoError(t, err)
			captures, ok := matcher.FindLine(test.Input)
			assert.Equal(t, test.Want, ok)
			assert.Equal(t, test.Captures, captures)
		})
	}
}

func TestMatchString(t *testing.T) {
	matcher, err := Compile("^cat$", nil)
	require.NoError(t, err)

	// each line is its own subject by default
	assert.True(t, matcher.MatchString("dog\ncat\nbird"))
	assert.False(t, matcher.MatchString("dog\nbird"))

	cfg := NewConfig()
	cfg.SetBool("match.split_lines", false)
	matcher, err = Compile("^cat$", cfg)
	require.NoError(t, err)
	assert.False(t, matcher.MatchString("dog\ncat"))
	assert.True(t, matcher.MatchString("cat"))
}

func TestMatchFullLines(t *testing.T) {
	cfg := NewConfig()
	cfg.SetBool("match.full_lines", true)

	matcher, err := Compile("cat", cfg)
	require.NoError(t, err)
	assert.True(t, matcher.MatchLine("cat"))
	assert.False(t, matcher.MatchLine("a cat"))
	assert.False(t, matcher.MatchLine("cats"))
}

func TestMatchIsDeterministicAcrossGoroutines(t *testing.T) {
	matcher, err := Compile(`(\w+) and \1`, nil)
	require.NoError(t, err)

	// one shared Matcher, one capture state per call
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.True(t, matcher.MatchLine("cat and cat"))
				assert.False(t, matcher.MatchLine("cat and dog"))
			}
		}()
	}
	wg.Wait()
}

func TestCompileRejectsBadPatterns(t *testing.T) {
	for _, pattern := range []string{"[abc", `a\`, "*", "", "a{2,1}"} {
		t.Run(pattern, func(t *testing.T) {
			matcher, err := Compile(pattern, nil)
			require.Error(t, err)
			assert.Nil(t, matcher)
		})
	}
}
