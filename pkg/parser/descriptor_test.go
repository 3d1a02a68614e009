package parser

import (
	"context"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
)

func converterTypes(t *testing.T, convs []Converter) []string {
	t.Helper()
	out := make([]string, len(convs))
	for i, c := range convs {
		out[i] = converterName(c)
	}
	return out
}

func assertNames(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestNormalizeMentionableExpandsToTriple(t *testing.T) {
	want := []string{"MemberConverter", "RoleConverter", "UserConverter"}

	for name, descriptors := range map[string][]interface{}{
		"kind":              {KindMentionable},
		"option type":       {discordgo.ApplicationCommandOptionMentionable},
		"union member/role": {AnyOf(KindMember, KindRole)},
		"union user/role":   {AnyOf(KindUser, KindRole)},
		"union role first":  {AnyOf(KindRole, KindUser)},
	} {
		t.Run(name, func(t *testing.T) {
			convs, err := Normalize(descriptors...)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			assertNames(t, converterTypes(t, convs), want)
		})
	}
}

func TestNormalizeUnionOfOtherKinds(t *testing.T) {
	convs, err := Normalize(AnyOf(KindInteger, KindString))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	assertNames(t, converterTypes(t, convs), []string{"IntegerConverter", "StringConverter"})
}

func TestNormalizeOptionTypes(t *testing.T) {
	convs, err := Normalize(
		discordgo.ApplicationCommandOptionInteger,
		discordgo.ApplicationCommandOptionBoolean,
		discordgo.ApplicationCommandOptionUser,
	)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	assertNames(t, converterTypes(t, convs),
		[]string{"IntegerConverter", "BooleanConverter", "MemberConverter"})
}

func TestNormalizeDefaultsToString(t *testing.T) {
	convs, err := Normalize()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	assertNames(t, converterTypes(t, convs), []string{"StringConverter"})
}

func TestNormalizeCustomCapabilities(t *testing.T) {
	custom := ConverterFunc(func(_ context.Context, _ *Context, argument string) (interface{}, error) {
		return argument, nil
	})
	convs, err := Normalize(custom)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(convs) != 1 {
		t.Fatalf("expected custom converter to pass through, got %d converters", len(convs))
	}
}

type upperTransformer struct{}

func (upperTransformer) Transform(_ context.Context, _ *discordgo.InteractionCreate, argument string) (interface{}, error) {
	return strings.ToUpper(argument), nil
}

func TestNormalizeWrapsTransformers(t *testing.T) {
	convs, err := Normalize(upperTransformer{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(convs) != 1 {
		t.Fatalf("expected one converter, got %d", len(convs))
	}
	cc := newTestContext(t)
	value, err := convs[0].Convert(context.Background(), cc, "hello")
	if err != nil || value != "HELLO" {
		t.Fatalf("expected transformer to run through the adapter, got %v, %v", value, err)
	}
}

func TestNormalizeRejectsUnsupportedDescriptors(t *testing.T) {
	for name, descriptors := range map[string][]interface{}{
		"random value":     {"not a descriptor"},
		"attachment":       {discordgo.ApplicationCommandOptionAttachment},
		"unknown kind":     {Kind(99)},
		"empty union":      {AnyOf()},
		"mixed with junk":  {KindString, 42},
		"bad inside union": {AnyOf(KindString, Kind(99))},
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := Normalize(descriptors...); err == nil {
				t.Fatal("expected normalization to fail, got nil error")
			}
		})
	}
}
