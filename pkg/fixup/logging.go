package fixup

import (
	"context"
	"fmt"

	"github.com/cklose/sqlxfix/pkg/rewrite"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly feedback about the rewrite run
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 📋 LogBackup reports the pre-mutation backup copy
func (u *UserLogger) LogBackup(path string) {
	msg := fmt.Sprintf("Created backup at %s", path)
	pterm.Info.WithPrefix(pterm.Prefix{Text: "📋"}).Println(msg)
	u.log.Info().Str("backup", path).Msg(msg)
}

// ✅ LogCompleted reports the finished rewrite with its summary line
func (u *UserLogger) LogCompleted(path string, result *rewrite.Result) {
	msg := fmt.Sprintf("Fixed SQLx syntax in %s", path)
	pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(msg)
	pterm.Println(formatSummary(result))
	u.log.Info().
		Int("bind_calls", result.MarkerCount).
		Bool("modified", result.WasModified).
		Msg(msg)
}

// 🔍 LogValidation logs validation results
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(description)
		u.log.Info().Msg(description)
		return
	}
	if err != nil {
		pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
		pterm.Error.Println(err)
		u.log.Error().Err(err).Msg(description)
	} else {
		pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(description)
		u.log.Warn().Msg(description)
	}
}
