// Package git locates the git workspace jig is running in.
//
// Discovery only looks for a .git entry on disk (a directory for regular
// repositories, a file for linked worktrees); it does not run git or read
// repository state. [FindWorkspace] walks from a directory towards the
// filesystem root and stops at the first match.
package git
