package cli

var cliStates = [...]string{"🙈", "🙉", "🙊", "🐵"}

const (
	prefixSucceeded = "●" // ✔ ✓ 🆗 👌 ☑ ✅
	prefixFailed    = "✖" // ⨯ × ✗ x X ☓ ✘
)
