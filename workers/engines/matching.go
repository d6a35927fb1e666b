package engines

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/equibook/equibook/config"
	"github.com/equibook/equibook/matching"
)

// submitQueueCap is the buffer size of each instrument's submission queue.
const submitQueueCap = 1024

// SubmitPayload is the serialized form of one submission.
type SubmitPayload struct {
	Instrument string          `json:"instrument"`
	Side       matching.Side   `json:"side"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int64           `json:"quantity"`
}

type submitRequest struct {
	payload SubmitPayload
	result  chan submitResponse
}

type submitResponse struct {
	result *matching.SubmitResult
	err    error
}

// MatchingWorker applies submissions to the engine with a single writer per
// instrument: every instrument gets one goroutine consuming an ordered queue
// of requests, so submissions to the same instrument are sequenced in
// arrival order while independent instruments proceed in parallel.
type MatchingWorker struct {
	engine *matching.Engine
	queues map[string]chan submitRequest
}

// NewMatchingWorker starts one processing loop per configured instrument.
func NewMatchingWorker(engine *matching.Engine) *MatchingWorker {
	worker := &MatchingWorker{
		engine: engine,
		queues: make(map[string]chan submitRequest),
	}

	for _, instrument := range engine.Instruments() {
		queue := make(chan submitRequest, submitQueueCap)
		worker.queues[instrument] = queue

		go worker.run(instrument, queue)
	}

	return worker
}

func (w *MatchingWorker) run(instrument string, queue chan submitRequest) {
	config.Logger.Debugf("[equibook.worker] %s matching loop started", instrument)

	for req := range queue {
		result, err := w.engine.Submit(instrument, req.payload.Side, req.payload.Price, req.payload.Quantity)
		req.result <- submitResponse{result: result, err: err}
	}
}

// Submit enqueues the payload on its instrument's queue and waits for the
// processing loop to apply it.
func (w *MatchingWorker) Submit(payload SubmitPayload) (*matching.SubmitResult, error) {
	queue, found := w.queues[payload.Instrument]
	if !found {
		return nil, fmt.Errorf("%w: %s", matching.ErrUnknownInstrument, payload.Instrument)
	}

	result := make(chan submitResponse, 1)
	queue <- submitRequest{payload: payload, result: result}

	resp := <-result
	return resp.result, resp.err
}

// Process decodes a serialized submission and applies it. It is the
// entrypoint for drivers feeding the worker from a byte stream.
func (w *MatchingWorker) Process(payload []byte) error {
	var submitPayload SubmitPayload
	if err := json.Unmarshal(payload, &submitPayload); err != nil {
		return err
	}

	_, err := w.Submit(submitPayload)
	return err
}

// Stop shuts down every instrument loop. Pending requests are still
// processed before their queue drains.
func (w *MatchingWorker) Stop() {
	for _, queue := range w.queues {
		close(queue)
	}
}
