package config

import (
	"os"
	"reflect"
	"testing"

	"amcbackend/analytics"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, k := range []string{"PORT", "COVERAGE_SUMMARY_POLICY", "SNAPSHOT_SITE_IDS", "SNAPSHOT_CRON", "CORS_ORIGINS", "DB_PORT"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" || cfg.DBPort != "5432" {
		t.Errorf("port defaults = %q, %q", cfg.Port, cfg.DBPort)
	}
	if cfg.SummaryPolicy != analytics.SummarizeLeaves {
		t.Errorf("SummaryPolicy = %q, want leaves", cfg.SummaryPolicy)
	}
	if cfg.SnapshotCron != "30 0 * * *" {
		t.Errorf("SnapshotCron = %q", cfg.SnapshotCron)
	}
	if cfg.SnapshotSiteIDs != nil {
		t.Errorf("SnapshotSiteIDs = %v, want nil", cfg.SnapshotSiteIDs)
	}
}

func TestLoad_Overrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "9000")
	t.Setenv("COVERAGE_SUMMARY_POLICY", "all_levels")
	t.Setenv("SNAPSHOT_SITE_IDS", "3, 7")
	t.Setenv("CORS_ORIGINS", "https://fm.example.com ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SummaryPolicy != analytics.SummarizeAllLevels {
		t.Errorf("SummaryPolicy = %q", cfg.SummaryPolicy)
	}
	if !reflect.DeepEqual(cfg.SnapshotSiteIDs, []int{3, 7}) {
		t.Errorf("SnapshotSiteIDs = %v", cfg.SnapshotSiteIDs)
	}
	if !reflect.DeepEqual(cfg.CORSOrigins, []string{"https://fm.example.com"}) {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestLoad_Invalid(t *testing.T) {
	chdir(t, t.TempDir())
	tests := map[string]string{
		"PORT":                    "eighty",
		"COVERAGE_SUMMARY_POLICY": "average",
		"SNAPSHOT_SITE_IDS":       "1,x",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv("PORT", "")
			t.Setenv("COVERAGE_SUMMARY_POLICY", "")
			t.Setenv("SNAPSHOT_SITE_IDS", "")
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Errorf("Load with %s=%q succeeded, want error", key, value)
			}
		})
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "fm", DBSSLMode: "disable"}
	want := "host=db port=5432 user=u password=p dbname=fm sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (stand-in for testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
