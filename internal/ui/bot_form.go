package ui

import (
	"strconv"

	"github.com/LLZ-DinosaurEgg/douban-console/internal/api"
)

// The bot configuration splits into two independently editable sub-forms.
// Each builds a partial update body carrying only its own fields, so saving
// one never clobbers the other.

// Field order inside the LLM settings form.
const (
	lfAPIType = iota
	lfAPIBase
	lfAPIKey
	lfModel
	lfTemperature
	lfMaxTokens
)

type botLLMForm struct {
	*form
}

func newBotLLMForm(cfg api.BotConfig) *botLLMForm {
	fields := []formField{
		textField("API type", cfg.APIType, "openai / claude / custom"),
		textField("API base URL", cfg.APIBase, "https://api.openai.com/v1"),
		textField("API key", "", secretPlaceholder(cfg.HasAPIKey)),
		textField("Model", cfg.Model, "gpt-3.5-turbo"),
		textField("Temperature", formatFloat(cfg.Temperature), "0.7"),
		textField("Max tokens", strconv.Itoa(cfg.MaxTokens), "500"),
	}
	return &botLLMForm{form: newForm("LLM settings", fields)}
}

func (f *botLLMForm) request() (api.BotConfigUpdate, bool) {
	f.errMsg = ""
	temperature, err := strconv.ParseFloat(f.value(lfTemperature), 64)
	if err != nil {
		f.errMsg = "temperature must be a number"
		return api.BotConfigUpdate{}, false
	}
	maxTokens, err := strconv.Atoi(f.value(lfMaxTokens))
	if err != nil || maxTokens <= 0 {
		f.errMsg = "max tokens must be a positive integer"
		return api.BotConfigUpdate{}, false
	}

	req := api.BotConfigUpdate{
		APIType:     ptr(f.value(lfAPIType)),
		APIBase:     ptr(f.value(lfAPIBase)),
		Model:       ptr(f.value(lfModel)),
		Temperature: ptr(temperature),
		MaxTokens:   ptr(maxTokens),
	}
	if key := f.value(lfAPIKey); key != "" {
		req.APIKey = api.NewSecret(key)
	}
	return req, true
}

// Field order inside the reply policy form.
const (
	pfKeywords = iota
	pfMinDelay
	pfMaxDelay
	pfSpeed
	pfInterval
	pfHistoryPosts
	pfHistoryComments
	pfPrompt
	pfCookie
	pfStyleLearning
)

type botPolicyForm struct {
	*form
}

func newBotPolicyForm(cfg api.BotConfig) *botPolicyForm {
	fields := []formField{
		textField("Reply keywords (comma separated)", joinList(cfg.ReplyKeywords), "empty replies to all matches"),
		textField("Min reply delay (s)", strconv.Itoa(cfg.MinReplyDelay), ""),
		textField("Max reply delay (s)", strconv.Itoa(cfg.MaxReplyDelay), ""),
		textField("Reply speed multiplier", formatFloat(cfg.ReplySpeedMultiplier), "1.0"),
		textField("Check interval (s)", strconv.Itoa(cfg.ReplyCheckInterval), ""),
		textField("Max history posts", strconv.Itoa(cfg.MaxHistoryPosts), ""),
		textField("Max history comments", strconv.Itoa(cfg.MaxHistoryComments), ""),
		textField("Custom prompt", cfg.CustomPrompt, ""),
		textField("Cookie", "", secretPlaceholder(cfg.HasCookie)),
		boolField("Style learning", cfg.EnableStyleLearning),
	}
	return &botPolicyForm{form: newForm("Reply policy", fields)}
}

func (f *botPolicyForm) request() (api.BotConfigUpdate, bool) {
	f.errMsg = ""
	minDelay, err1 := strconv.Atoi(f.value(pfMinDelay))
	maxDelay, err2 := strconv.Atoi(f.value(pfMaxDelay))
	interval, err3 := strconv.Atoi(f.value(pfInterval))
	historyPosts, err4 := strconv.Atoi(f.value(pfHistoryPosts))
	historyComments, err5 := strconv.Atoi(f.value(pfHistoryComments))
	for _, err := range []error{err1, err2, err3, err4, err5} {
		if err != nil {
			f.errMsg = "delays, interval and history fields must be integers"
			return api.BotConfigUpdate{}, false
		}
	}
	speed, err := strconv.ParseFloat(f.value(pfSpeed), 64)
	if err != nil || speed <= 0 {
		f.errMsg = "speed multiplier must be a positive number"
		return api.BotConfigUpdate{}, false
	}
	if minDelay > maxDelay {
		f.errMsg = "min delay must not exceed max delay"
		return api.BotConfigUpdate{}, false
	}

	req := api.BotConfigUpdate{
		ReplyKeywords:        splitKeywords(f.value(pfKeywords)),
		MinReplyDelay:        ptr(minDelay),
		MaxReplyDelay:        ptr(maxDelay),
		ReplySpeedMultiplier: ptr(speed),
		ReplyCheckInterval:   ptr(interval),
		MaxHistoryPosts:      ptr(historyPosts),
		MaxHistoryComments:   ptr(historyComments),
		EnableStyleLearning:  ptr(f.boolValue(pfStyleLearning)),
		CustomPrompt:         ptr(f.value(pfPrompt)),
	}
	if cookie := f.value(pfCookie); cookie != "" {
		req.Cookie = api.NewSecret(cookie)
	}
	return req, true
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func ptr[T any](v T) *T {
	return &v
}
