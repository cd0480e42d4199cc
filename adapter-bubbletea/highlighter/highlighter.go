package highlighter

import (
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// Highlighter handles syntax highlighting for the editor
type Highlighter struct {
	lexer      chroma.Lexer
	style      *chroma.Style
	plain      bool
	version    int                    // Document version the cache was built for
	cache      map[int][]chroma.Token // Cache tokens by line number
	styleCache map[chroma.TokenType]lipgloss.Style
	cacheMutex sync.RWMutex
}

// TokenPosition represents a token's position in the original line
type TokenPosition struct {
	Token    chroma.Token
	StartCol int
	EndCol   int
}

// New creates a syntax highlighter for the given file name. The lexer is
// picked from the file name's pattern ("*.go", "Makefile"), then by language
// name, falling back to plain text.
func New(filename string, theme string) *Highlighter {
	lexer := lexers.Match(filename)
	if lexer == nil {
		lexer = lexers.Get(filename)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}

	name := lexer.Config().Name
	plain := name == "plaintext" || name == lexers.Fallback.Config().Name

	lexer = chroma.Coalesce(lexer)

	return &Highlighter{
		lexer:      lexer,
		style:      styles.Get(theme),
		plain:      plain,
		version:    -1,
		cache:      make(map[int][]chroma.Token),
		styleCache: make(map[chroma.TokenType]lipgloss.Style),
	}
}

// Language returns the name of the lexer in use.
func (sh *Highlighter) Language() string {
	return sh.lexer.Config().Name
}

// IsPlainText reports whether no language-specific lexer matched.
func (sh *Highlighter) IsPlainText() bool {
	return sh.plain
}

// InvalidateCache clears the token cache (call when content changes)
func (sh *Highlighter) InvalidateCache() {
	sh.cacheMutex.Lock()
	defer sh.cacheMutex.Unlock()
	sh.cache = make(map[int][]chroma.Token)
	sh.version = -1
}

// Sync re-tokenizes lines when version differs from the one the cache holds.
func (sh *Highlighter) Sync(version int, lines []string) {
	sh.cacheMutex.RLock()
	current := sh.version == version
	sh.cacheMutex.RUnlock()

	if current {
		return
	}

	sh.Tokenize(lines)

	sh.cacheMutex.Lock()
	sh.version = version
	sh.cacheMutex.Unlock()
}

// Tokenize tokenizes the entire content and populates the cache.
// Multi-line constructs (block comments, raw strings) need the whole document.
func (sh *Highlighter) Tokenize(lines []string) {
	sh.cacheMutex.Lock()
	defer sh.cacheMutex.Unlock()

	sh.cache = make(map[int][]chroma.Token)

	content := strings.Join(lines, "\n")
	if content == "" {
		return
	}

	iterator, err := sh.lexer.Tokenise(nil, content)
	if err != nil {
		// On error, cache empty tokens to avoid re-tokenizing on every render
		for i := range lines {
			sh.cache[i] = []chroma.Token{}
		}
		return
	}

	lineNum := 0
	sh.cache[lineNum] = []chroma.Token{}

	for _, token := range iterator.Tokens() {
		value := token.Value
		for strings.Contains(value, "\n") {
			before, after, _ := strings.Cut(value, "\n")
			if before != "" {
				sh.cache[lineNum] = append(sh.cache[lineNum], chroma.Token{Type: token.Type, Value: before})
			}
			lineNum++
			sh.cache[lineNum] = []chroma.Token{}
			value = after
		}
		if value != "" {
			sh.cache[lineNum] = append(sh.cache[lineNum], chroma.Token{Type: token.Type, Value: value})
		}
	}
}

// GetTokensForLine returns the cached syntax tokens for a line.
func (sh *Highlighter) GetTokensForLine(lineNum int) []chroma.Token {
	sh.cacheMutex.RLock()
	defer sh.cacheMutex.RUnlock()
	return sh.cache[lineNum]
}

// GetStyleForToken converts a Chroma token type to a lipgloss style.
func (sh *Highlighter) GetStyleForToken(tokenType chroma.TokenType) lipgloss.Style {
	sh.cacheMutex.Lock()
	defer sh.cacheMutex.Unlock()

	if style, ok := sh.styleCache[tokenType]; ok {
		return style
	}

	entry := sh.style.Get(tokenType)

	style := lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		style = style.Foreground(lipgloss.Color(entry.Colour.String()))
	}

	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}

	sh.styleCache[tokenType] = style

	return style
}

// GetTokenPositions converts tokens to rune column ranges in the line.
func GetTokenPositions(tokens []chroma.Token) []TokenPosition {
	positions := make([]TokenPosition, 0, len(tokens))
	currentCol := 0

	for _, token := range tokens {
		tokenLen := len([]rune(token.Value))

		positions = append(positions, TokenPosition{
			Token:    token,
			StartCol: currentCol,
			EndCol:   currentCol + tokenLen,
		})

		currentCol += tokenLen
	}

	return positions
}

// FindTokenAtPosition finds which token contains the given column position.
func FindTokenAtPosition(positions []TokenPosition, col int) (chroma.Token, bool) {
	for _, pos := range positions {
		if col >= pos.StartCol && col < pos.EndCol {
			return pos.Token, true
		}
	}
	return chroma.Token{}, false
}
