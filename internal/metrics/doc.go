// Package metrics é o motor de métricas de campanha.
//
// Todas as funções são puras: dependem apenas dos argumentos, não fazem I/O
// e nunca retornam erro por qualidade de dado. Entradas inválidas viram 0 e
// toda razão com denominador zero resulta em 0.
package metrics
