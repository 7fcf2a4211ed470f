// Command chime posts workflow lifecycle notifications from inside a GitHub
// Actions run: a starting message when the pipeline begins and a
// success/failure/cancelled message when it ends.
package main
