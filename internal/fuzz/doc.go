// Package fuzztests houses Go fuzz harnesses for the token pipeline
// (source -> lexer -> token trees -> marker rewriting). They guard against
// panics, hangs and broken span invariants on arbitrary inputs.
//
// Назначение: прогонять байты через FileSet, лексер, lexer.Parse и place.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/place,
// internal/diag, internal/testkit.

package fuzztests
