package rivine

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/tfexplorer-parser/internal/explorer/model"
	"go.uber.org/zap"
)

const (
	operationWallet           = "wallet"
	operationBlock            = "block"
	operationTransaction      = "transaction"
	operationCoinOutput       = "coin_output"
	operationBlockstakeOutput = "blockstake_output"
	operationHash             = "hash"
)

// Parser turns explorer responses into model results. It holds no state
// between calls and is safe for concurrent use.
type Parser struct {
	cfg        Config
	reconciler *Reconciler
	observer   observer
}

// NewParser constructs a Parser. logger and metrics may be nil.
func NewParser(cfg Config, logger *zap.Logger, metrics Metrics) (*Parser, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("network", string(cfg.Network)))
	return &Parser{
		cfg:        cfg,
		reconciler: NewReconciler(cfg.Precision, cfg.BlockstakePrecision, logger, metrics),
		observer:   newObserver(logger, metrics),
	}, nil
}

// ParseHashResponse decodes the explorer answer for hash. It returns
// ErrNoResult when the response matches no known entity.
func (p *Parser) ParseHashResponse(res HashResponse, hash string) (result model.Result, err error) {
	started := time.Now()
	operation := operationHash
	defer func() {
		p.observer.operation(operation, err, started)
	}()

	switch {
	case hash == p.cfg.CustodyVoidAddress || res.HashType == HashTypeUnlockhash:
		operation = operationWallet
		w, err := p.assembleWallet(res, hash)
		if err != nil {
			return nil, err
		}
		return w, nil
	case res.HashType == HashTypeCoinOutputID:
		operation = operationCoinOutput
		info, err := p.lookupCoinOutput(res, hash)
		if err != nil {
			return nil, err
		}
		return info, nil
	case res.HashType == HashTypeBlockstakeOutputID:
		operation = operationBlockstakeOutput
		info, err := p.lookupBlockstakeOutput(res, hash)
		if err != nil {
			return nil, err
		}
		return info, nil
	case res.Block != nil && !isNullID(res.Block.BlockID):
		operation = operationBlock
		block, err := p.assembleBlock(*res.Block)
		if err != nil {
			return nil, err
		}
		return block, nil
	case res.Transaction != nil && !isNullID(res.Transaction.ID):
		operation = operationTransaction
		tx, ok, err := p.assembleTransaction(*res.Transaction, nil)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("transaction %s version %d: %w", res.Transaction.ID, res.Transaction.RawTransaction.Version, ErrNoResult)
		}
		return tx, nil
	default:
		return nil, fmt.Errorf("hash %s type %q: %w", hash, res.HashType, ErrNoResult)
	}
}

// ParseHashResponseJSON decodes a raw hash endpoint body.
func (p *Parser) ParseHashResponseJSON(data []byte, hash string) (model.Result, error) {
	var res HashResponse
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("decode hash response: %w", err)
	}
	return p.ParseHashResponse(res, hash)
}

// ParseBlockResponse decodes the explorer answer to a block lookup.
func (p *Parser) ParseBlockResponse(res BlockResponse) (block *model.Block, err error) {
	started := time.Now()
	defer func() {
		p.observer.operation(operationBlock, err, started)
	}()
	return p.assembleBlock(res.Block)
}

// ParseBlockResponseJSON decodes a raw block endpoint body.
func (p *Parser) ParseBlockResponseJSON(data []byte) (*model.Block, error) {
	var res BlockResponse
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("decode block response: %w", err)
	}
	return p.ParseBlockResponse(res)
}

var nullHash chainhash.Hash

// isNullID reports whether id is the all-zero hash explorers return for
// unknown blocks and transactions.
func isNullID(id string) bool {
	if len(id) != chainhash.MaxHashStringSize {
		return false
	}
	h, err := chainhash.NewHashFromStr(id)
	return err == nil && h.IsEqual(&nullHash)
}
