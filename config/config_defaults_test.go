package config

import (
	"testing"
	"time"
)

func TestApplyDefaults_FillsEmptySections(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Worker.Port != defaultWorkerPort {
		t.Fatalf("worker port = %d, want %d", cfg.Worker.Port, defaultWorkerPort)
	}
	if cfg.PubSub.Provider != "inprocess" {
		t.Fatalf("pubsub provider = %q", cfg.PubSub.Provider)
	}
	if cfg.Storage.BucketURL != "mem://" {
		t.Fatalf("bucket url = %q", cfg.Storage.BucketURL)
	}
	if cfg.Ads.Provider != "simulated" || cfg.Ads.SimulatedDelay != defaultSimulatedAdDelay {
		t.Fatalf("ads = %+v", cfg.Ads)
	}
	if cfg.Submission.AdErrorPolicy != "retry" || cfg.Submission.LockTTL != defaultSubmissionLockTTL {
		t.Fatalf("submission = %+v", cfg.Submission)
	}
	if cfg.Media.Runtime != "native" || cfg.Media.MaxBytes != defaultMediaMaxBytes {
		t.Fatalf("media = %+v", cfg.Media)
	}
	if cfg.Redis == nil {
		t.Fatal("redis section not initialised")
	}
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Submission: &SubmissionConfig{AdErrorPolicy: "bypass", LockTTL: time.Minute},
		Ads:        &AdsConfig{Provider: "client"},
	}
	applyDefaults(cfg)

	if cfg.Submission.AdErrorPolicy != "bypass" || cfg.Submission.LockTTL != time.Minute {
		t.Fatalf("submission overwritten: %+v", cfg.Submission)
	}
	if cfg.Ads.Provider != "client" {
		t.Fatalf("ads provider overwritten: %q", cfg.Ads.Provider)
	}
}
