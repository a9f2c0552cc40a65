package journal

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/aarondl/sqlboiler/v4/types"
	"github.com/dropbox/godropbox/time2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	_ "github.com/lib/pq" // postgres driver
	"github.com/pkg/errors"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/action"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/config"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util/db"
)

const (
	StatusRunning = "running"

	DefaultListLimit = 20
	MaxListLimit     = 100
)

var ErrNotFound = errors.New("flow not found")

// Flow is one journaled orchestrator flow.
type Flow struct {
	ID          string           `boil:"id" json:"id"`
	Flow        string           `boil:"flow" json:"flow"`
	UserAddress string           `boil:"user_address" json:"userAddress"`
	TargetIDs   types.Int64Array `boil:"target_ids" json:"targetIds"`
	TargetName  string           `boil:"target_name" json:"targetName"`
	Status      string           `boil:"status" json:"status"`
	FinalStep   null.String      `boil:"final_step" json:"finalStep"`
	ApproveTx   null.String      `boil:"approve_tx" json:"approveTx"`
	ActionTx    null.String      `boil:"action_tx" json:"actionTx"`
	ErrorKind   null.String      `boil:"error_kind" json:"errorKind"`
	Message     null.String      `boil:"message" json:"message"`
	CreatedAt   time.Time        `boil:"created_at" json:"createdAt"`
	UpdatedAt   time.Time        `boil:"updated_at" json:"updatedAt"`
}

type Step struct {
	FlowID    string      `boil:"flow_id" json:"-"`
	Step      string      `boil:"step" json:"step"`
	TxHash    null.String `boil:"tx_hash" json:"txHash"`
	CreatedAt time.Time   `boil:"created_at" json:"createdAt"`
}

// Store journals flows to postgres. It implements action.Recorder.
type Store struct {
	exec  boil.ContextExecutor
	clock time2.Clock
}

var _ action.Recorder = (*Store)(nil)

func New(exec boil.ContextExecutor, clock time2.Clock) *Store {
	return &Store{exec: exec, clock: clock}
}

// Open connects to postgres with the pool settings of cfg.
func Open(ctx context.Context, cfg config.Database) (*sql.DB, error) {
	conn, err := sql.Open("postgres", cfg.ConnectionString())
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(err, "failed to ping database")
	}

	return conn, nil
}

func (s *Store) Begin(ctx context.Context, flow action.Flow, user common.Address, targets []int64) (string, error) {
	id := uuid.New().String()
	now := s.clock.Now().UTC()

	_, err := queries.Raw(
		`INSERT INTO flows (id, flow, user_address, target_ids, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)`,
		id, string(flow), strings.ToLower(user.Hex()), types.Int64Array(targets), StatusRunning, now,
	).ExecContext(ctx, s.exec)
	if err != nil {
		return "", errors.Wrapf(err, "failed to insert %s flow", flow)
	}

	return id, nil
}

func (s *Store) Step(ctx context.Context, flowID string, step action.Step, txHash *common.Hash) error {
	if len(flowID) == 0 {
		return nil
	}

	var hash null.String
	if txHash != nil {
		hash = null.StringFrom(txHash.Hex())
	}

	_, err := queries.Raw(
		`INSERT INTO flow_steps (flow_id, step, tx_hash, created_at) VALUES ($1, $2, $3, $4)`,
		flowID, step.String(), hash, s.clock.Now().UTC(),
	).ExecContext(ctx, s.exec)
	if err != nil {
		return errors.Wrapf(err, "failed to insert step %s of flow %s", step, flowID)
	}

	return nil
}

func (s *Store) Finish(ctx context.Context, flowID string, result *action.Result) error {
	if len(flowID) == 0 {
		return nil
	}

	res, err := queries.Raw(
		`UPDATE flows SET status = $2, final_step = $3, approve_tx = $4, action_tx = $5,
		error_kind = $6, message = $7, target_name = $8, updated_at = $9 WHERE id = $1`,
		flowID,
		string(result.Status),
		null.StringFrom(result.Step.String()),
		hashOrNull(result.ApproveTx),
		hashOrNull(result.ActionTx),
		null.NewString(string(result.Kind), len(result.Kind) > 0),
		null.NewString(result.Message, len(result.Message) > 0),
		result.Name,
		s.clock.Now().UTC(),
	).ExecContext(ctx, s.exec)
	if err != nil {
		return errors.Wrapf(err, "failed to finish flow %s", flowID)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return errors.Wrap(ErrNotFound, flowID)
	}

	return nil
}

type ListParams struct {
	User   common.Address
	Query  string
	Limit  int
	Offset int
}

// List returns the flows of a user, newest first. Query filters by target name.
func (s *Store) List(ctx context.Context, params ListParams) ([]*Flow, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	q := db.NewQuery(
		qm.From("flows"),
		qm.Where("user_address = ?", strings.ToLower(params.User.Hex())),
		db.ILikeSearch(params.Query, "flows", "target_name"),
		qm.OrderBy("created_at DESC"),
		qm.Limit(limit),
		qm.Offset(params.Offset),
	)

	flows := []*Flow{}
	if err := q.Bind(ctx, s.exec, &flows); err != nil {
		return nil, errors.Wrap(err, "failed to list flows")
	}

	return flows, nil
}

// Get returns a flow with its step history.
func (s *Store) Get(ctx context.Context, id string) (*Flow, []*Step, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil, errors.Wrap(ErrNotFound, id)
	}

	var flow Flow
	err := queries.Raw(`SELECT * FROM flows WHERE id = $1`, id).Bind(ctx, s.exec, &flow)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, errors.Wrap(ErrNotFound, id)
	}
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to load flow %s", id)
	}

	steps := []*Step{}
	err = queries.Raw(
		`SELECT flow_id, step, tx_hash, created_at FROM flow_steps WHERE flow_id = $1 ORDER BY id`, id,
	).Bind(ctx, s.exec, &steps)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to load steps of flow %s", id)
	}

	return &flow, steps, nil
}

func hashOrNull(h *common.Hash) null.String {
	if h == nil {
		return null.String{}
	}

	return null.StringFrom(h.Hex())
}
