package wizard

const (
	promptType        = "👋 Qual o tipo do commit?"
	promptScope       = `Deseja adicionar escopo? (ex: auth, api) ou "-" para pular`
	promptBreaking    = "É uma breaking change?"
	promptDescription = "Digite a descrição curta (máx 72 caracteres)"
	promptBody        = `Deseja adicionar descrição detalhada ou "-" para pular`
	promptIssue       = `Existe issue associada? Digite números separados por vírgula ou "-" se não houver`

	msgInvalidIssue = "❌ Entrada inválida. Use apenas números de issues separados por vírgula, ex: 12,34,56"
	msgGenerated    = "✅ Commit gerado:"
	msgCopied       = "✔ Commit copiado para a área de transferência!"
)

// Skip is the answer that leaves an optional field empty.
const Skip = "-"

// BreakingYes is the answer that marks a breaking change.
const BreakingYes = "sim"

var breakingButtons = []Button{
	{Label: "Sim", Value: BreakingYes},
	{Label: "Não", Value: "não"},
}
