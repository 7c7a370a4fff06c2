// Package fonts resolves the typeface used for PDF exports.
package fonts

import (
	"os"
	"sync"

	"github.com/rs/zerolog/log"
)

// Font identifies the typeface the PDF exporter renders with. When Path
// is empty, Family names one of the built-in PDF core font families.
type Font struct {
	Family string
	Path   string
}

// Candidate locations of Arabic-capable typefaces on common platforms.
var candidatePaths = []string{
	// Linux
	"/usr/share/fonts/truetype/noto/NotoSansArabic-Regular.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	// Windows
	`C:\Windows\Fonts\arial.ttf`,
	`C:\Windows\Fonts\calibri.ttf`,
	`C:\Windows\Fonts\times.ttf`,
	`C:\Windows\Fonts\DejaVuSans.ttf`,
}

var (
	once     sync.Once
	resolved Font
)

// Resolve returns the font all exports render with.
//
// The filesystem is probed exactly once per process, every caller
// afterwards observes the same handle. Concurrent callers during the
// first resolution block until it completes.
func Resolve() Font {
	once.Do(func() {
		resolved = resolve()
	})

	return resolved
}

func resolve() Font {
	for _, path := range candidatePaths {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}

		log.Debug().Str("path", path).Msg("using system font for exports")
		return Font{Family: "ArabicFont", Path: path}
	}

	log.Warn().Msg("no system font found, exports fall back to the built-in Courier font")
	return Font{Family: "Courier"}
}
