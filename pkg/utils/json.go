package utils

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson serializa um valor em JSON identado para exibição
func PrettyJson(in any) string {
	buffer, err := json.MarshalIndent(in, "", "\t")
	if err != nil {
		return ""
	}

	return string(buffer)
}

// CompactJson serializa um valor em JSON compacto, retornando string vazia em caso de erro
func CompactJson(in any) string {
	buffer, err := json.Marshal(in)
	if err != nil {
		return ""
	}

	return string(buffer)
}
