package cache

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/domain"
)

// KeyOf gera a chave de cache do filtro: SHA-256 em hexadecimal da sua forma canônica.
// Filtros equivalentes (mesmas datas em UTC, mesma categoria e região) geram a mesma chave.
func KeyOf(spec domain.FilterSpec) string {
	sum := sha256.Sum256(spec.Canonical())
	return hex.EncodeToString(sum[:])
}

// PrefixedKey aplica o prefixo configurado à chave, se houver
func PrefixedKey(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + key
}
