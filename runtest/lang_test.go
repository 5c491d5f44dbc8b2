package runtest

import "testing"

func TestArithmetic(t *testing.T) {
	RunTestSuite(t, TestSuite{
		{"scalars", TestSequence{
			{Line: "+ 1 2", Stack: "3"},
			{Line: "× 2", Stack: "6"},
			{Line: "- 1", Stack: "5"},
			{Line: "÷ 2", Stack: "2.5"},
			{Line: "⌊", Stack: "2"},
		}},
		{"pervasion", TestSequence{
			{Line: "+ 10 1_2_3", Stack: "[11 12 13]"},
			{Line: ";", Stack: ""},
			{Line: "× 1_2_3 ↯3_2 ⇡6", Stack: "[[0 1] [4 6] [12 15]]"},
		}},
		{"division by zero", TestSequence{
			{Line: "÷0 5", Stack: "∞"},
			{Line: "÷0 ¯5", Stack: "¯∞ ∞"},
		}},
	})
}

func TestStackOps(t *testing.T) {
	RunTestSuite(t, TestSuite{
		{"basics", TestSequence{
			{Line: "1 2 3", Stack: "1 2 3"},
			{Line: ".", Stack: "1 1 2 3"},
			{Line: ";", Stack: "1 2 3"},
			{Line: "~", Stack: "2 1 3"},
			{Line: ",", Stack: "1 2 1 3"},
		}},
	})
}

func TestArrays(t *testing.T) {
	RunTestSuite(t, TestSuite{
		{"construction", TestSequence{
			{Line: "⇡5", Stack: "[0 1 2 3 4]"},
			{Line: "/+", Stack: "10"},
			{Line: "⇌ ⇡3", Stack: "[2 1 0] 10"},
			{Line: "⊂", Stack: "[2 1 0 10]"},
		}},
		{"shapes", TestSequence{
			{Line: "↯2_3 ⇡6", Stack: "[[0 1 2] [3 4 5]]"},
			{Line: "△", Stack: "[2 3]"},
			{Line: "/×", Stack: "6"},
		}},
		{"strings", TestSequence{
			{Line: `⊂ "foo" "bar"`, Stack: `"foobar"`},
			{Line: "⇌", Stack: `"raboof"`},
			{Line: "⊢", Stack: "@r"},
		}},
		{"selection", TestSequence{
			{Line: "⊏ 0_2 3_4_5", Stack: "[3 5]"},
			{Line: ";", Stack: ""},
			{Line: "⊡ 1_0 ↯2_2 ⇡4", Stack: "2"},
			{Line: ";", Stack: ""},
			{Line: "▽ 0_1_1 7_8_9", Stack: "[8 9]"},
			{Line: ";", Stack: ""},
			{Line: "↻1 1_2_3", Stack: "[2 3 1]"},
		}},
		{"search", TestSequence{
			{Line: "⊗ 2 1_2_3", Stack: "1"},
			{Line: "∊ 5 1_2_3", Stack: "0 1"},
		}},
		{"grades", TestSequence{
			{Line: "⍏ 3_1_2", Stack: "[1 2 0]"},
			{Line: "⍖ 3_1_2", Stack: "[0 2 1] [1 2 0]"},
		}},
	})
}

func TestModifiers(t *testing.T) {
	RunTestSuite(t, TestSuite{
		{"aggregation", TestSequence{
			{Line: "/+ 1_2_3_4", Stack: "10"},
			{Line: ";", Stack: ""},
			{Line: `\× 1_2_3`, Stack: "[1 2 6]"},
			{Line: ";", Stack: ""},
			{Line: "∧+ 10 1_2_3", Stack: "16"},
		}},
		{"iteration", TestSequence{
			{Line: "≡/+ ↯2_3 ⇡6", Stack: "[3 12]"},
			{Line: "∵(×2) 1_2_3", Stack: "[2 4 6] [3 12]"},
			{Line: ";;", Stack: ""},
			{Line: "⊞× 1_2_3 4_5", Stack: "[[4 5] [8 10] [12 15]]"},
		}},
		{"repetition", TestSequence{
			{Line: "⍥(+1) 3 0", Stack: "3"},
		}},
		{"under and invert", TestSequence{
			{Line: "⍜(↙2)(×10) 1_2_3", Stack: "[10 20 3]"},
			{Line: ";", Stack: ""},
			{Line: "⍘(+1) 6", Stack: "5"},
			{Line: ";", Stack: ""},
			{Line: "⍜⇌(⊂10) 1_2_3", Stack: "[1 2 3 10]"},
		}},
		{"fill", TestSequence{
			{Line: "↙5 1_2_3", Err: "cannot take"},
			{Line: "⬚0(↙5) 1_2_3", Stack: "[1 2 3 0 0]"},
		}},
	})
}

func TestBoxes(t *testing.T) {
	RunTestSuite(t, TestSuite{
		{"box round trip", TestSequence{
			{Line: "□5", Stack: "□5"},
			{Line: "⊔", Stack: "5"},
			{Line: `type □"hi"`, Stack: "2 5"},
		}},
	})
}

func TestControl(t *testing.T) {
	RunTestSuite(t, TestSuite{
		{"if", TestSequence{
			{Line: "?(+1)(-1) 1 5", Stack: "6"},
		}},
		{"try", TestSequence{
			{Line: `⍣(⍤0 "boom")(⊂"caught ")`, Stack: `"caught boom"`},
		}},
		{"assert", TestSequence{
			{Line: `⍤1 "positive"`, Stack: ""},
			{Line: `⍤0 "positive"`, Err: "positive"},
		}},
	})
}

func TestConcurrency(t *testing.T) {
	RunTestSuite(t, TestSuite{
		{"spawn and wait", TestSequence{
			{Line: "wait spawn(+) 1 2", Stack: "3"},
		}},
	})
}
