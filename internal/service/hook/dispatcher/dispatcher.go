// Package dispatcher 이벤트 하나를 여러 훅에 동시에 전달하고, 훅별 결과를 모아 Report로 반환합니다.
//
// 훅이 처리하지 않는 이벤트는 호출하지 않고 Skipped로 기록합니다.
// 한 훅의 실패나 패닉은 다른 훅의 처리에 영향을 주지 않습니다.
package dispatcher

import (
	"context"
	"time"

	apperrors "github.com/darkkaiser/team-hooks/internal/pkg/errors"
	"github.com/darkkaiser/team-hooks/internal/service/contract"
	"github.com/darkkaiser/team-hooks/internal/service/hook/variant"
	applog "github.com/darkkaiser/team-hooks/pkg/log"
	"golang.org/x/sync/errgroup"
)

// component 로깅용 컴포넌트 이름
const component = "hook.dispatcher"

// DefaultMaxConcurrency 동시에 처리하는 훅의 기본 최대 개수
const DefaultMaxConcurrency = 4

type Option func(*Dispatcher)

// WithMaxConcurrency 동시에 처리할 훅의 최대 개수를 지정합니다. 0 이하이면 기본값을 사용합니다.
func WithMaxConcurrency(n int) Option {
	return func(d *Dispatcher) {
		if n > 0 {
			d.maxConcurrency = n
		}
	}
}

// Dispatcher 이벤트를 훅들에 전달합니다. 상태를 갖지 않으므로 여러 고루틴에서 동시에 사용할 수 있습니다.
type Dispatcher struct {
	maxConcurrency int
}

func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{maxConcurrency: DefaultMaxConcurrency}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch 이벤트를 모든 훅에 전달하고 결과를 반환합니다.
//
// 처리 가능한 훅마다 Handle을 정확히 한 번 호출하며, 모든 훅의 처리가 끝난 후에 반환합니다.
// ctx가 종료되면 아직 시작하지 않은 훅은 호출하지 않고 ErrDispatchCanceled로 기록합니다.
// 이미 시작된 전송은 완료되거나 전송 시간 제한에 걸릴 때까지 계속됩니다.
func (d *Dispatcher) Dispatch(ctx context.Context, event *contract.Event, hooks []variant.Hook) Report {
	outcomes := make([]Outcome, len(hooks))
	for i, h := range hooks {
		outcomes[i] = Outcome{HookID: h.ID(), Variant: h.Descriptor().Name}
	}

	if event == nil {
		for i := range outcomes {
			outcomes[i].Status = Failed
			outcomes[i].Err = ErrNilEvent
		}
		return Report{Outcomes: outcomes}
	}

	kind := event.Kind()

	// 훅의 실패가 다른 훅을 취소하지 않도록 errgroup.WithContext를 사용하지 않습니다.
	var g errgroup.Group
	g.SetLimit(d.maxConcurrency)

	for i, h := range hooks {
		o := &outcomes[i]

		if !h.Handles(kind) {
			o.Status = Skipped
			continue
		}

		if err := ctx.Err(); err != nil {
			o.Status = Failed
			o.Err = newErrDispatchCanceled(o.HookID, err)
			continue
		}

		g.Go(func() error {
			// 동시 실행 슬롯을 기다리는 동안 취소되었을 수 있습니다.
			if err := ctx.Err(); err != nil {
				o.Status = Failed
				o.Err = newErrDispatchCanceled(o.HookID, err)
				return nil
			}

			start := time.Now()
			err := handle(ctx, h, event)
			o.Duration = time.Since(start)

			if err != nil {
				o.Status = Failed
				o.Err = err
			} else {
				o.Status = Delivered
			}
			return nil
		})
	}

	_ = g.Wait()

	report := Report{Event: kind, Outcomes: outcomes}
	logReport(report)

	return report
}

// handle 훅을 호출하고 패닉을 에러로 바꿉니다.
func handle(ctx context.Context, h variant.Hook, event *contract.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newErrPanicRecovered(h.ID(), r)

			applog.WithComponentAndFields(component, applog.Fields{
				"hook_id":     h.ID(),
				"event":       event.Kind(),
				"panic_value": r,
			}).Error("Critical: 훅 처리 도중 패닉 발생 (Recovered)")
		}
	}()

	return h.Handle(ctx, event)
}

func logReport(r Report) {
	for _, o := range r.Outcomes {
		fields := applog.Fields{
			"hook_id": o.HookID,
			"variant": o.Variant,
			"event":   r.Event,
			"status":  o.Status.String(),
		}

		switch o.Status {
		case Delivered:
			fields["duration_ms"] = o.Duration.Milliseconds()
			applog.WithComponentAndFields(component, fields).Info("훅 전달 성공")

		case Skipped:
			applog.WithComponentAndFields(component, fields).Debug("훅이 처리하지 않는 이벤트여서 건너뜀")

		case Failed:
			fields["error_type"] = apperrors.UnderlyingType(o.Err).String()
			applog.WithComponentAndFields(component, fields).WithError(o.Err).Warn("훅 전달 실패")

		default:
			applog.WithComponentAndFields(component, fields).Error("훅 전달 결과가 기록되지 않았습니다")
		}
	}

	c := r.Summary()
	applog.WithComponentAndFields(component, applog.Fields{
		"event":     r.Event,
		"delivered": c.Delivered,
		"failed":    c.Failed,
		"skipped":   c.Skipped,
	}).Debug("이벤트 발송 완료")
}
