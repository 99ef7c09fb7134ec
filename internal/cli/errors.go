package cli

import (
	"fmt"
	"io"

	"github.com/arthur-debert/buildscripts/pkg/errors"
	"github.com/arthur-debert/buildscripts/pkg/logging"
	"github.com/arthur-debert/buildscripts/pkg/ui"
)

// PrintError reports err on w and returns the process exit status.
// Only failures of a script run are reported as execution failures; a
// rejected menu choice was already shown by the menu itself.
func PrintError(w io.Writer, err error) int {
	if err == nil {
		return 0
	}

	logger := logging.GetLogger("cli")
	logger.Info().
		Str("code", string(errors.GetErrorCode(err))).
		Fields(errors.GetErrorDetails(err)).
		Msg("Command failed")

	printer := ui.NewPrinter(w, ui.FormatAuto)
	switch errors.GetErrorCode(err) {
	case errors.ErrInvalidSelection:
	case errors.ErrConfigLoad:
		printer.Problem(fmt.Sprintf(MsgErrConfig, err))
	default:
		printer.Error(err)
	}
	return errors.ExitCode(err)
}
