package glyph

// Basic returns the characters every Store keeps resident from
// construction onward. These are never evicted.
func Basic() []string {
	return []string{"あ", "い", "う", "え", "お"}
}

// Builtin returns the reference registry for the 46 base hiragana.
// Stroke counts follow standard stroke order charts; feature flags and
// complexities describe how the engine's extractor sees a well-formed
// drawing of each character. The returned map is a fresh copy.
func Builtin() Registry {
	return Registry{
		// あ行
		"あ": {StrokeCount: 3, Features: Features{HasHorizontalLine: true, HasVerticalLine: true, HasCurve: true, Complexity: 0.7}},
		"い": {StrokeCount: 2, Features: Features{HasVerticalLine: true, HasCurve: true, Complexity: 0.3}},
		"う": {StrokeCount: 2, Features: Features{HasHorizontalLine: true, HasCurve: true, Complexity: 0.4}},
		"え": {StrokeCount: 2, Features: Features{HasHorizontalLine: true, HasCurve: true, Complexity: 0.5}},
		"お": {StrokeCount: 3, Features: Features{HasHorizontalLine: true, HasVerticalLine: true, HasCurve: true, Complexity: 0.7}},

		// か行
		"か": {StrokeCount: 3, Features: Features{HasVerticalLine: true, HasCurve: true, Complexity: 0.6}},
		"き": {StrokeCount: 4, Features: Features{HasHorizontalLine: true, HasVerticalLine: true, HasCurve: true, Complexity: 0.7}},
		"く": {StrokeCount: 1, Features: Features{HasCurve: true, Complexity: 0.2}},
		"け": {StrokeCount: 3, Features: Features{HasHorizontalLine: true, HasVerticalLine: true, HasCurve: true, Complexity: 0.5}},
		"こ": {StrokeCount: 2, Features: Features{HasHorizontalLine: true, Complexity: 0.3}},

		// さ行
		"さ": {StrokeCount: 3, Features: Features{HasHorizontalLine: true, HasVerticalLine: true, HasCurve: true, Complexity: 0.5}},
		"し": {StrokeCount: 1, Features: Features{HasVerticalLine: true, HasCurve: true, Complexity: 0.2}},
		"す": {StrokeCount: 2, Features: Features{HasHorizontalLine: true, HasVerticalLine: true, HasCurve: true, Complexity: 0.4}},
		"せ": {StrokeCount: 3, Features: Features{HasHorizontalLine: true, HasVerticalLine: true, Complexity: 0.5}},
		"そ": {StrokeCount: 1, Features: Features{HasHorizontalLine: true, HasCurve: true, Complexity: 0.4}},

		// た行
		"た": {StrokeCount: 4, Features: Features{HasHorizontalLine: true, HasVerticalLine: true, HasCurve: true, Complexity: 0.6}},
		"ち": {StrokeCount: 2, Features: Features{HasHorizontalLine: true, HasCurve: true, Complexity: 0.4}},
		"つ": {StrokeCount: 1, Features: Features{HasCurve: true, Complexity: 0.2}},
		"て": {StrokeCount: 1, Features: Features{HasHorizontalLine: true, HasCurve: true, Complexity: 0.3}},
		"と": {StrokeCount: 2, Features: Features{HasVerticalLine: true, HasCurve: true, Complexity: 0.3}},

		// な行
		"な": {StrokeCount: 4, Features: Features{HasHorizontalLine: true, HasVerticalLine: true, HasCurve: true, Complexity: 0.7}},
		"に": {StrokeCount: 3, Features: Features{HasHorizontalLine: true, HasVerticalLine: true, Complexity: 0.4}},
		"ぬ": {StrokeCount: 2, Features: Features{HasCurve: true, Complexity: 0.6}},
		"ね": {StrokeCount: 2, Features: Features{HasVerticalLine: true, HasCurve: true, Complexity: 0.6}},
		"の": {StrokeCount: 1, Features: Features{HasCurve: true, Complexity: 0.3}},

		// は行
		"は": {StrokeCount: 3, Features: Features{HasHorizontalLine: true, HasVerticalLine: true, HasCurve: true, Complexity: 0.5}},
		"ひ": {StrokeCount: 1, Features: Features{HasHorizontalLine: true, HasCurve: true, Complexity: 0.2}},
		"ふ": {StrokeCount: 4, Features: Features{HasCurve: true, Complexity: 0.6}},
		"へ": {StrokeCount: 1, Features: Features{HasCurve: true, Complexity: 0.1}},
		"ほ": {StrokeCount: 4, Features: Features{HasHorizontalLine: true, HasVerticalLine: true, HasCurve: true, Complexity: 0.7}},

		// ま行
		"ま": {StrokeCount: 3, Features: Features{HasHorizontalLine: true, HasVerticalLine: true, HasCurve: true, Complexity: 0.5}},
		"み": {StrokeCount: 2, Features: Features{HasCurve: true, Complexity: 0.5}},
		"む": {StrokeCount: 3, Features: Features{HasHorizontalLine: true, HasVerticalLine: true, HasCurve: true, Complexity: 0.6}},
		"め": {StrokeCount: 2, Features: Features{HasCurve: true, Complexity: 0.5}},
		"も": {StrokeCount: 3, Features: Features{HasHorizontalLine: true, HasVerticalLine: true, HasCurve: true, Complexity: 0.5}},

		// や行
		"や": {StrokeCount: 3, Features: Features{HasHorizontalLine: true, HasCurve: true, Complexity: 0.5}},
		"ゆ": {StrokeCount: 2, Features: Features{HasVerticalLine: true, HasCurve: true, Complexity: 0.6}},
		"よ": {StrokeCount: 2, Features: Features{HasHorizontalLine: true, HasVerticalLine: true, HasCurve: true, Complexity: 0.4}},

		// ら行
		"ら": {StrokeCount: 2, Features: Features{HasCurve: true, Complexity: 0.4}},
		"り": {StrokeCount: 2, Features: Features{HasVerticalLine: true, HasCurve: true, Complexity: 0.3}},
		"る": {StrokeCount: 1, Features: Features{HasCurve: true, Complexity: 0.5}},
		"れ": {StrokeCount: 2, Features: Features{HasVerticalLine: true, HasCurve: true, Complexity: 0.5}},
		"ろ": {StrokeCount: 1, Features: Features{HasCurve: true, Complexity: 0.4}},

		// わ行
		"わ": {StrokeCount: 2, Features: Features{HasVerticalLine: true, HasCurve: true, Complexity: 0.5}},
		"を": {StrokeCount: 3, Features: Features{HasHorizontalLine: true, HasCurve: true, Complexity: 0.6}},
		"ん": {StrokeCount: 1, Features: Features{HasCurve: true, Complexity: 0.4}},
	}
}
