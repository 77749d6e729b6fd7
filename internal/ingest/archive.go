package ingest

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/mholt/archiver/v3"

	"github.com/tablelift/tablelift/constants"
	"github.com/tablelift/tablelift/internal/async"
	"github.com/tablelift/tablelift/internal/entity"
	"github.com/tablelift/tablelift/internal/progress"
)

func (c *Coordinator) enqueueExpansion(file *entity.SourceFile) {
	job := async.Job{
		Name: fmt.Sprintf("expand %s", file.ID),
		Run: func(ctx context.Context) error {
			return c.expandArchive(ctx, file.ID)
		},
	}
	if err := c.queue.Enqueue(context.Background(), job); err != nil {
		c.logger.Error("failed to enqueue archive expansion", "file_id", file.ID, "error", err)
	}
}

// expandArchive unpacks one uploaded archive and registers each supported
// member as its own source file. Expansion is all or nothing: a corrupt
// archive marks the parent failed and registers no members.
func (c *Coordinator) expandArchive(ctx context.Context, fileID uuid.UUID) error {
	file, err := c.files.Get(ctx, fileID)
	if err != nil {
		return err
	}
	if file.Status != constants.FileStatusUnpacking {
		return nil
	}

	dest := file.SourcePath + ".unpacked"
	if err := archiver.Unarchive(file.SourcePath, dest); err != nil {
		if _, ferr := c.markFileFailed(ctx, file, fmt.Sprintf("archive expansion: %v", err)); ferr != nil {
			return ferr
		}
		return nil
	}

	members, err := collectMembers(dest)
	if err != nil {
		if _, ferr := c.markFileFailed(ctx, file, fmt.Sprintf("archive walk: %v", err)); ferr != nil {
			return ferr
		}
		return nil
	}

	// Hash everything before registering anything: expansion either yields
	// the full member set or fails the parent with none of it visible.
	prefix := strings.TrimSuffix(filepath.Base(file.Filename), filepath.Ext(file.Filename))
	for i := range members {
		size, hash, err := hashFile(members[i].path)
		if err != nil {
			return c.failExpansion(ctx, file, nil, fmt.Sprintf("member %s: %v", members[i].rel, err))
		}
		members[i].size = size
		members[i].hash = hash
	}

	registered := make([]*entity.SourceFile, 0, len(members))
	for _, m := range members {
		member, err := c.files.Create(ctx, &entity.SourceFile{
			RunID:       file.RunID,
			SourcePath:  m.path,
			Filename:    prefix + "/" + m.rel,
			FileExt:     constants.NormalizeExt(filepath.Ext(m.rel)),
			FileSize:    m.size,
			ContentHash: m.hash,
			Status:      constants.FileStatusReady,
			Origin:      constants.OriginArchiveMember,
			ParentID:    &file.ID,
		})
		if err != nil {
			return c.failExpansion(ctx, file, registered, fmt.Sprintf("member %s: %v", m.rel, err))
		}
		registered = append(registered, member)
	}
	for _, member := range registered {
		c.broadcaster.Publish(progress.Event{
			RunID: file.RunID, EntityID: member.ID,
			Kind: progress.KindFile, Register: true,
		})
		c.broadcaster.Publish(progress.Event{
			RunID: file.RunID, EntityID: member.ID,
			Kind: progress.KindFile, Status: string(constants.FileStatusReady),
		})
	}

	file, err = c.files.UpdateStatus(ctx, fileID,
		[]constants.FileStatus{constants.FileStatusUnpacking},
		constants.FileStatusUnpacked, "")
	if err != nil {
		return err
	}
	c.broadcaster.Publish(progress.Event{
		RunID: file.RunID, EntityID: file.ID,
		Kind: progress.KindFile, Status: string(constants.FileStatusUnpacked),
	})
	c.logger.Info("archive expanded", "file_id", fileID, "members", len(members))
	return nil
}

// failExpansion rolls a half-done expansion back: members registered so far
// are soft-deleted again and the parent archive goes to failed.
func (c *Coordinator) failExpansion(ctx context.Context, file *entity.SourceFile, registered []*entity.SourceFile, reason string) error {
	for _, member := range registered {
		_, err := c.files.UpdateStatus(ctx, member.ID,
			[]constants.FileStatus{constants.FileStatusReady},
			constants.FileStatusDeleted, "")
		if err != nil {
			c.logger.Error("could not retract archive member", "file_id", member.ID, "error", err)
		}
	}
	if _, err := c.markFileFailed(ctx, file, reason); err != nil {
		return err
	}
	return nil
}

type archiveMember struct {
	path string // absolute location on disk
	rel  string // slash-separated path inside the archive
	size int64
	hash []byte
}

// collectMembers walks an expanded archive and keeps the supported,
// non-archive members. Nested archives are not expanded.
func collectMembers(root string) ([]archiveMember, error) {
	var out []archiveMember
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if !constants.AllowedExt(ext) || constants.IsArchive(path) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		out = append(out, archiveMember{path: path, rel: filepath.ToSlash(rel)})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
