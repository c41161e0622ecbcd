package gatekeeper

import (
	"fmt"
	"log/slog"

	"burpwatch/internal/config"
	"burpwatch/internal/interfaces"

	"golang.org/x/sys/unix"
)

// Gatekeeper enforces the rules a restore must pass before it is submitted
type Gatekeeper struct {
	config      *config.Config
	restoreRepo interfaces.RestoreRepository
	running     interfaces.RunningChecker

	statfs func(path string, stat *unix.Statfs_t) error
}

func New(cfg *config.Config, restoreRepo interfaces.RestoreRepository, running interfaces.RunningChecker) *Gatekeeper {
	return &Gatekeeper{
		config:      cfg,
		restoreRepo: restoreRepo,
		running:     running,
		statfs:      unix.Statfs,
	}
}

// CanStartRestore checks if a new restore can be submitted
func (g *Gatekeeper) CanStartRestore(estimatedSize int64) interfaces.GateDecision {
	gatekeeperCfg := g.config.GetGatekeeper()

	// Rule 1: Block while burp is busy with a backup
	if gatekeeperCfg.Rules.BlockRestoresDuringBackup && g.running != nil && g.running.IsRunning() {
		return interfaces.GateDecision{
			Allowed: false,
			Reason:  "Backup in progress",
		}
	}

	// Rule 2: Cap concurrent restores
	if gatekeeperCfg.MaxActiveRestores > 0 {
		active, err := g.restoreRepo.GetActiveRestoresCount()
		if err != nil {
			slog.Error("failed to check active restores", "error", err)
			return interfaces.GateDecision{
				Allowed: false,
				Reason:  "Unable to verify active restores",
			}
		}

		if active >= gatekeeperCfg.MaxActiveRestores {
			return interfaces.GateDecision{
				Allowed: false,
				Reason:  "Too many active restores",
				Details: map[string]interface{}{
					"active_restores":     active,
					"max_active_restores": gatekeeperCfg.MaxActiveRestores,
				},
			}
		}
	}

	// Rule 3: The archive has to fit in the download directory
	if gatekeeperCfg.Rules.RequireSpaceCheck {
		stat, err := g.getDownloadDiskStats()
		if err != nil {
			slog.Error("failed to check download disk stats", "error", err)
			return interfaces.GateDecision{
				Allowed: false,
				Reason:  "Unable to verify disk space",
			}
		}

		availableBytes := int64(stat.Bavail * uint64(stat.Bsize))
		required := gatekeeperCfg.MinFreeBytes
		if estimatedSize > 0 {
			required += estimatedSize
		}

		if availableBytes < required {
			return interfaces.GateDecision{
				Allowed: false,
				Reason:  "Insufficient disk space for restore",
				Details: map[string]interface{}{
					"estimated_size_bytes": estimatedSize,
					"available_bytes":      availableBytes,
					"required_bytes":       required,
				},
			}
		}
	}

	return interfaces.GateDecision{
		Allowed: true,
		Reason:  "All checks passed",
	}
}

// GetResourceStatus returns current resource status
func (g *Gatekeeper) GetResourceStatus() interfaces.GatekeeperResourceStatus {
	gatekeeperCfg := g.config.GetGatekeeper()

	activeRestores := 0
	count, err := g.restoreRepo.GetActiveRestoresCount()
	if err == nil {
		activeRestores = count
	}

	var freeBytes, totalBytes int64
	if stat, err := g.getDownloadDiskStats(); err == nil {
		freeBytes = int64(stat.Bavail * uint64(stat.Bsize))
		totalBytes = int64(stat.Blocks * uint64(stat.Bsize))
	}

	backupRunning := false
	if g.running != nil {
		backupRunning = g.running.IsRunning()
	}

	return interfaces.GatekeeperResourceStatus{
		BackupRunning:     backupRunning,
		ActiveRestores:    activeRestores,
		MaxActiveRestores: gatekeeperCfg.MaxActiveRestores,
		DownloadFreeBytes: freeBytes,
		DownloadTotal:     totalBytes,
		MinFreeBytes:      gatekeeperCfg.MinFreeBytes,
	}
}

func (g *Gatekeeper) getDownloadDiskStats() (*unix.Statfs_t, error) {
	dir := g.config.GetTasks().DownloadDir

	var stat unix.Statfs_t
	if err := g.statfs(dir, &stat); err != nil {
		return nil, fmt.Errorf("failed to stat download dir %s: %w", dir, err)
	}

	return &stat, nil
}
