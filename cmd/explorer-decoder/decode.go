package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goodnatureofminers/tfexplorer-parser/internal/explorer/model"
	"github.com/goodnatureofminers/tfexplorer-parser/internal/explorer/rivine"
	"github.com/goodnatureofminers/tfexplorer-parser/internal/metrics"
	"github.com/goodnatureofminers/tfexplorer-parser/pkg/batcher"
	"github.com/goodnatureofminers/tfexplorer-parser/pkg/workerpool"
	"go.uber.org/zap"
)

// summary is the per-file line logged and optionally written as JSON.
type summary struct {
	File              string           `json:"file"`
	Kind              model.ResultKind `json:"kind,omitempty"`
	ID                string           `json:"id,omitempty"`
	Height            uint64           `json:"height,omitempty"`
	CoinBalance       *model.Currency  `json:"coin_balance,omitempty"`
	BlockstakeBalance *model.Currency  `json:"blockstake_balance,omitempty"`
	Outputs           int              `json:"outputs"`
	Transactions      int              `json:"transactions"`
	Spent             *bool            `json:"spent,omitempty"`
	Dropped           int              `json:"dropped,omitempty"`
	Error             string           `json:"error,omitempty"`
}

func (s summary) fields() []zap.Field {
	fields := []zap.Field{
		zap.String("file", s.File),
		zap.String("kind", string(s.Kind)),
		zap.String("id", s.ID),
		zap.Int("outputs", s.Outputs),
		zap.Int("transactions", s.Transactions),
	}
	if s.Height > 0 {
		fields = append(fields, zap.Uint64("height", s.Height))
	}
	if s.CoinBalance != nil {
		fields = append(fields, zap.Stringer("coin_balance", s.CoinBalance))
	}
	if s.BlockstakeBalance != nil {
		fields = append(fields, zap.Stringer("blockstake_balance", s.BlockstakeBalance))
	}
	if s.Spent != nil {
		fields = append(fields, zap.Bool("spent", *s.Spent))
	}
	if s.Dropped > 0 {
		fields = append(fields, zap.Int("dropped", s.Dropped))
	}
	return fields
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	parserCfg, err := parserConfig(cfg)
	if err != nil {
		return err
	}
	parser, err := rivine.NewParser(parserCfg, logger, metrics.NewParser(parserCfg.Network))
	if err != nil {
		return fmt.Errorf("init parser: %w", err)
	}
	decoderMetrics := metrics.NewDecoder(parserCfg.Network)

	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	var out *batcher.Batcher[summary]
	if cfg.Output != "" {
		w, closeOutput, err := openOutput(cfg.Output)
		if err != nil {
			return err
		}
		defer closeOutput()
		out = batcher.New(logger, writeSummaries(w), batcher.Config{FlushSize: cfg.FlushSize, FlushRate: cfg.FlushRate})
		out.Start(ctx)
	}

	summaries, errs, err := workerpool.Map(ctx, cfg.Workers, cfg.Inputs, func(_ context.Context, path string) (summary, error) {
		started := time.Now()
		s, err := decodeFile(parser, cfg, path)
		decoderMetrics.ObserveFile(err, started)
		return s, err
	})
	if err != nil {
		return fmt.Errorf("decode inputs: %w", err)
	}
	decoderMetrics.ObserveBatch(len(cfg.Inputs))

	failed := 0
	for i, s := range summaries {
		if errs[i] != nil {
			failed++
			s = summary{File: cfg.Inputs[i], Error: errs[i].Error()}
			logger.Error("failed to decode response", zap.String("file", s.File), zap.Error(errs[i]))
		} else {
			logger.Info("decoded response", s.fields()...)
		}
		if out != nil {
			if err := out.Add(ctx, s); err != nil {
				return fmt.Errorf("queue summary %s: %w", s.File, err)
			}
		}
	}
	if out != nil {
		if err := out.Stop(); err != nil {
			return fmt.Errorf("write summaries: %w", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d responses failed to decode", failed, len(cfg.Inputs))
	}
	return nil
}

func parserConfig(cfg config) (rivine.Config, error) {
	parserCfg := rivine.DefaultConfig()
	if cfg.Profile != "" {
		loaded, err := rivine.LoadConfig(cfg.Profile)
		if err != nil {
			return rivine.Config{}, err
		}
		parserCfg = loaded
	}
	if cfg.Precision >= 0 {
		parserCfg.Precision = uint(cfg.Precision)
	}
	return parserCfg, nil
}

func decodeFile(parser *rivine.Parser, cfg config, path string) (summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return summary{}, fmt.Errorf("read %s: %w", path, err)
	}

	if cfg.Block {
		block, err := parser.ParseBlockResponseJSON(data)
		if err != nil {
			return summary{}, fmt.Errorf("%s: %w", path, err)
		}
		return summarize(path, block), nil
	}

	hash := cfg.Hash
	if hash == "" {
		hash = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	result, err := parser.ParseHashResponseJSON(data, hash)
	if err != nil {
		return summary{}, fmt.Errorf("%s: %w", path, err)
	}
	return summarize(path, result), nil
}

func summarize(path string, result model.Result) summary {
	s := summary{File: path, Kind: result.Kind()}
	switch r := result.(type) {
	case *model.Wallet:
		s.ID = r.Address
		s.CoinBalance = &r.ConfirmedCoinBalance
		s.BlockstakeBalance = &r.ConfirmedBlockstakeBalance
		s.Outputs = len(r.CoinOutputs) + len(r.BlockstakeOutputs) + len(r.MinerPayouts)
		s.Transactions = len(r.Transactions)
		s.Dropped = len(r.DecodeErrors)
	case *model.Block:
		s.ID = r.ID
		s.Height = r.Height
		s.Outputs = len(r.MinerPayouts)
		s.Transactions = len(r.Transactions)
		s.Dropped = len(r.DecodeErrors)
	case *model.CoinOutputInfo:
		s.ID = r.Output.ID
		s.Height = r.Output.BlockHeight
		s.CoinBalance = &r.Output.Value
		s.Outputs = 1
		s.Spent = &r.Output.Spent
		s.Dropped = len(r.DecodeErrors)
	case *model.BlockstakeOutputInfo:
		s.ID = r.Output.ID
		s.Height = r.Output.BlockHeight
		s.BlockstakeBalance = &r.Output.Value
		s.Outputs = 1
		s.Spent = &r.Output.Spent
		s.Dropped = len(r.DecodeErrors)
	case model.Transaction:
		meta := r.Meta()
		s.ID = meta.ID
		s.Height = meta.BlockHeight
		s.Transactions = 1
		s.Dropped = len(meta.DecodeErrors)
		switch tx := r.(type) {
		case *model.StandardTransaction:
			s.Outputs = len(tx.CoinOutputs) + len(tx.BlockstakeOutputs)
		case *model.CoinCreationTransaction:
			s.Outputs = len(tx.CoinOutputs)
		}
	}
	return s
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func writeSummaries(w io.Writer) func(context.Context, []summary) error {
	enc := json.NewEncoder(w)
	return func(_ context.Context, batch []summary) error {
		for _, s := range batch {
			if err := enc.Encode(s); err != nil {
				return err
			}
		}
		return nil
	}
}
