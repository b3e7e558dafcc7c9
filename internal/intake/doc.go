// Package intake classifies and aggregates the files of a single input folder.
//
// It lists the direct children of a folder using fastwalk, keeps the
// candidates whose extension is in the supported set, classifies each one as
// valid, empty, or unreadable (decoding as UTF-8 with a Latin-1 fallback),
// and folds the outcomes into run statistics grouped by extension.
package intake
