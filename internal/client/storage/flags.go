package storage

import "context"

// flagSet is the sentinel value marking a gating flag as set.
const flagSet = "1"

// Flags reads and writes the two durable gating flags. A flag is true when
// its key is present with the sentinel value, false otherwise.
type Flags struct {
	kv Repository
}

func NewFlags(kv Repository) *Flags {
	return &Flags{kv: kv}
}

func (f *Flags) OnboardingComplete(ctx context.Context) (bool, error) {
	return f.get(ctx, KeyOnboardingComplete)
}

func (f *Flags) SetOnboardingComplete(ctx context.Context, val bool) error {
	return f.set(ctx, KeyOnboardingComplete, val)
}

func (f *Flags) ConsentAccepted(ctx context.Context) (bool, error) {
	return f.get(ctx, KeyConsentAccepted)
}

func (f *Flags) SetConsentAccepted(ctx context.Context, val bool) error {
	return f.set(ctx, KeyConsentAccepted, val)
}

func (f *Flags) get(ctx context.Context, key string) (bool, error) {
	v, err := f.kv.Get(ctx, key)
	if err != nil {
		return false, err
	}
	return string(v) == flagSet, nil
}

func (f *Flags) set(ctx context.Context, key string, val bool) error {
	if val {
		return f.kv.Set(ctx, key, []byte(flagSet))
	}
	return f.kv.Delete(ctx, key)
}
