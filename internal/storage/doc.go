// Package storage gives the replacer whole-file access to its target: an
// up-front accessibility check, a full read and a full overwrite. There is no
// streaming, locking or atomic rename.
package storage
