package services

// FileRemover cleans an uploaded file off disk. Removal always runs after
// the database write that dropped the reference, and is best-effort: a
// record never points at a deleted file, an orphan on disk is tolerated.
type FileRemover interface {
	Remove(relPath string)
}
