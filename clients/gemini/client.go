// Package gemini provides the conversational assistant client backed by the
// Google Gemini API. The assistant either answers questions about the user's
// finances from a sanitized document snapshot, or emits a structured
// addTransaction instruction for the ledger to apply.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/aivofinance/aivo/common"
	"github.com/aivofinance/aivo/interfaces"
	"github.com/aivofinance/aivo/models"
	"github.com/aivofinance/aivo/services/report"
)

const (
	DefaultModel = "gemini-2.5-flash"

	// maxHistoryTurns bounds how much conversation history is replayed per
	// request.
	maxHistoryTurns = 10

	addTransactionFunction = "addTransaction"
)

// Client implements the AssistantClient interface
type Client struct {
	client *genai.Client
	model  string
	logger *common.Logger
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithModel sets the model to use
func WithModel(model string) ClientOption {
	return func(c *Client) {
		c.model = model
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new Gemini assistant client
func NewClient(ctx context.Context, apiKey string, opts ...ClientOption) (*Client, error) {
	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c := &Client{
		client: genaiClient,
		model:  DefaultModel,
		logger: common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Close closes the client
func (c *Client) Close() error {
	// The genai client doesn't have a Close method
	return nil
}

// addTransactionDeclaration describes the one callable surface the assistant
// has into the ledger.
func addTransactionDeclaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        addTransactionFunction,
		Description: "Adds a new income or expense transaction.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"description": {
					Type:        genai.TypeString,
					Description: `A detailed description of the transaction, e.g., "Monthly Salary" or "Groceries from Carrefour".`,
				},
				"amount": {
					Type:        genai.TypeNumber,
					Description: "The monetary value of the transaction.",
				},
				"type": {
					Type:        genai.TypeString,
					Enum:        []string{string(models.TxIncome), string(models.TxExpense)},
					Description: "The type of transaction, either INCOME or EXPENSE.",
				},
				"category": {
					Type:        genai.TypeString,
					Description: "The category of the transaction.",
				},
				"walletName": {
					Type:        genai.TypeString,
					Description: "The name of the wallet to associate the transaction with.",
				},
			},
			Required: []string{"description", "amount", "type", "category", "walletName"},
		},
	}
}

// promptData is the sanitized slice of the document shared with the model.
// Wallet and goal ids are stripped; only the last few transactions go along.
type promptData struct {
	Wallets            []promptWallet       `json:"wallets"`
	Categories         models.Categories    `json:"categories"`
	Budgets            []models.Budget      `json:"budgets"`
	Goals              []promptGoal         `json:"goals"`
	RecentTransactions []models.Transaction `json:"recentTransactions"`
	NetWorth           float64              `json:"netWorth"`
}

type promptWallet struct {
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

type promptGoal struct {
	Name         string  `json:"name"`
	TargetAmount float64 `json:"targetAmount"`
	SavedAmount  float64 `json:"savedAmount"`
}

func buildPromptData(doc *models.AppData) promptData {
	data := promptData{
		Categories: doc.Categories,
		Budgets:    doc.Budgets,
		NetWorth: report.NetWorth(doc.Wallets, doc.Transactions, doc.Debts,
			doc.Assets, doc.FixedDeposits, doc.Settings.BaseCurrency),
	}
	for _, w := range doc.Wallets {
		data.Wallets = append(data.Wallets, promptWallet{Name: w.Name, Currency: w.Currency})
	}
	for _, g := range doc.Goals {
		data.Goals = append(data.Goals, promptGoal{Name: g.Name, TargetAmount: g.TargetAmount, SavedAmount: g.SavedAmount})
	}
	txs := doc.Transactions
	if len(txs) > 10 {
		txs = txs[len(txs)-10:]
	}
	data.RecentTransactions = txs
	return data
}

func buildSystemInstruction(doc *models.AppData) (string, error) {
	walletNames := make([]string, 0, len(doc.Wallets))
	for _, w := range doc.Wallets {
		walletNames = append(walletNames, w.Name)
	}
	allCategories := append(append([]string{}, doc.Categories.Income...), doc.Categories.Expense...)

	snapshot, err := json.MarshalIndent(buildPromptData(doc), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	return fmt.Sprintf(`You are a helpful and friendly personal finance assistant named AivoFinance AI. Your goal is to help the user manage their finances.

You have two main capabilities:
1.  **Add Transactions:** If the user's message is clearly stating a transaction they want to record (e.g., "I bought coffee for 5", "received 2000 salary"), you MUST call the `+"`addTransaction`"+` function with the extracted details.
    -   Infer the transaction type (INCOME/EXPENSE).
    -   You MUST select a category from the provided list. If the user mentions a category not on the list, choose the most appropriate one from the list.
    -   You MUST select a wallet from the provided list. If the user doesn't specify a wallet, use the first one in the list.
2.  **Answer Questions:** If the user asks a question about their finances (e.g., "how much did I spend on groceries?", "what's my net worth?", "show me my budgets"), you MUST answer in a conversational, helpful tone.
    -   Use the provided JSON data to answer the user's questions accurately.
    -   You can perform calculations like sums, averages, and comparisons.
    -   Present data in a clear, easy-to-understand format. Use markdown for lists, bolding, etc. if it helps with clarity.
    -   If you don't have enough information to answer, politely ask the user for clarification.

**Available Wallets:** %s
**Available Categories:** %s

**User's Financial Data (for answering questions):**
`+"```json\n%s\n```"+`

Analyze the user's latest prompt and decide whether to call the function or provide a text-based answer.`,
		strings.Join(walletNames, ", "),
		strings.Join(allCategories, ", "),
		snapshot,
	), nil
}

// Chat sends the user's prompt plus bounded history and the document
// snapshot to the model. The reply is either conversational text or a
// structured addTransaction instruction, never both.
func (c *Client) Chat(ctx context.Context, history []models.AssistantMessage, prompt string, snapshot *models.AppData) (*models.AssistantReply, error) {
	if len(snapshot.Wallets) == 0 {
		// No point calling the model without a wallet to book against.
		return &models.AssistantReply{Text: "Please add a wallet first before using the AI Assistant."}, nil
	}

	systemInstruction, err := buildSystemInstruction(snapshot)
	if err != nil {
		return nil, err
	}

	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, msg := range history {
		contents = append(contents, &genai.Content{
			Role:  msg.Role,
			Parts: []*genai.Part{{Text: msg.Text}},
		})
	}
	contents = append(contents, &genai.Content{
		Role:  genai.RoleUser,
		Parts: []*genai.Part{{Text: prompt}},
	})

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
		Tools:             []*genai.Tool{{FunctionDeclarations: []*genai.FunctionDeclaration{addTransactionDeclaration()}}},
		Temperature:       genai.Ptr(float32(0)),
	}

	c.logger.Debug().Str("model", c.model).Int("history", len(history)).Msg("Sending assistant prompt")
	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("failed to generate assistant response: %w", err)
	}

	if calls := result.FunctionCalls(); len(calls) > 0 {
		call, err := parseAddTransactionCall(calls[0])
		if err != nil {
			return nil, err
		}
		return &models.AssistantReply{AddTransaction: call}, nil
	}

	text := result.Text()
	if text == "" {
		return nil, fmt.Errorf("no content generated")
	}
	return &models.AssistantReply{Text: text}, nil
}

// parseAddTransactionCall converts the model's loosely typed argument map
// into the structured instruction the ledger accepts.
func parseAddTransactionCall(fc *genai.FunctionCall) (*models.AddTransactionCall, error) {
	if fc.Name != addTransactionFunction {
		return nil, fmt.Errorf("unexpected function call %q", fc.Name)
	}

	raw, err := json.Marshal(fc.Args)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal function call args: %w", err)
	}
	var call models.AddTransactionCall
	if err := json.Unmarshal(raw, &call); err != nil {
		return nil, fmt.Errorf("failed to parse function call args: %w", err)
	}
	if !models.ValidTransactionType(call.Type) {
		return nil, fmt.Errorf("function call has invalid transaction type %q", call.Type)
	}
	return &call, nil
}

// Ensure Client implements AssistantClient
var _ interfaces.AssistantClient = (*Client)(nil)
