// Copyright (c) 2025 Arber Bekoci.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth implements the entry-password gate for the data-entry
editor: constant-time password verification and random session tokens.

The results engine itself has no knowledge of credentials; this gate
only fronts the editor flow.
*/
package auth
