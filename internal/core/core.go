package core

// CommitType is one of the conventional commit types offered by the wizard.
type CommitType struct {
	Type        string
	Description string
}

// CommitTypes lists the offered types in display order.
var CommitTypes = []CommitType{
	{Type: "feat", Description: "Nova funcionalidade adicionada ao sistema"},
	{Type: "fix", Description: "Correção de um bug ou problema existente"},
	{Type: "docs", Description: "Alterações apenas na documentação"},
	{Type: "style", Description: "Alterações visuais como formatação, espaçamento (sem alteração de lógica)"},
	{Type: "refactor", Description: "Reestruturação de código sem alteração de comportamento"},
	{Type: "test", Description: "Criação ou alteração de testes"},
	{Type: "chore", Description: "Tarefas de manutenção (dependências, settings, configs...)"},
}

// Record holds the fields collected by the wizard.
type Record struct {
	Type        string `yaml:"type"`
	Scope       string `yaml:"scope,omitempty"`
	Breaking    bool   `yaml:"breaking"`
	Description string `yaml:"description"`
	Body        string `yaml:"body,omitempty"`
	Issue       string `yaml:"issue,omitempty"`
}
