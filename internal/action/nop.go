package action

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util"
)

type NopRecorder struct{}

func (NopRecorder) Begin(context.Context, Flow, common.Address, []int64) (string, error) {
	return "", nil
}

func (NopRecorder) Step(context.Context, string, Step, *common.Hash) error {
	return nil
}

func (NopRecorder) Finish(context.Context, string, *Result) error {
	return nil
}

type NopObserver struct{}

func (NopObserver) StepChanged(Flow, Step)               {}
func (NopObserver) FlowFinished(Flow, Status, ErrorKind) {}
func (NopObserver) ReceiptWaited(Flow, time.Duration)    {}

// LogNotifier writes toasts to the request logger.
type LogNotifier struct{}

func (LogNotifier) Toast(ctx context.Context, toast Toast) {
	logger := util.LogFromContext(ctx)
	if toast.Level == ToastError {
		logger.Warn().Str("level", string(toast.Level)).Msg(toast.Message)
		return
	}

	logger.Info().Str("level", string(toast.Level)).Msg(toast.Message)
}

// LogNavigator logs the result URL. The URL is also returned in every Result.
type LogNavigator struct{}

func (LogNavigator) Navigate(_ context.Context, url string) {
	log.Debug().Str("url", url).Msg("Navigating to result page")
}
