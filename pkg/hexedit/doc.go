// Package hexedit is the public editing API: open a file, edit bytes and
// nibbles against a sparse overlay, then save, abandon, or insert and
// delete byte ranges.
//
// # Opening
//
//	s, err := hexedit.Open("firmware.bin", nil)
//	if err != nil {
//	    if types.IsKind(err, types.ErrKindNotFound) { ... }
//	    return err
//	}
//	defer s.Close()
//
// # Editing
//
// Edits never touch the file until Save. Writing the original value back
// removes the pending edit, so PendingCount is always the number of bytes
// that differ from disk.
//
//	_ = s.EditNibble(0x10, grid.HexHigh, 'f')
//	_ = s.EditByte(0x11, 'A')
//	n, err := s.Save(ctx)
//
// # Structural Changes
//
// Insert and Delete rebuild the file through <path>.hxtmp and an atomic
// rename. They refuse to run while edits are pending. Deleting every byte
// closes the session.
//
// # Errors
//
// All errors are *types.Error; branch with types.IsKind or errors.Is
// against the types sentinels.
//
// # Thread Safety
//
// A Session is owned by one goroutine.
package hexedit
