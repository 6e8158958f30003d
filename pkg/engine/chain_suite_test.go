package engine

import (
	"context"
	"sync"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/killallgit/loom/pkg/chat"
	"github.com/killallgit/loom/pkg/template"
	"github.com/killallgit/loom/pkg/tools"
)

func TestChains(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Chain Execution Suite")
}

var _ = Describe("Template chaining", func() {
	var (
		registry   *template.Registry
		dispatcher *fakeDispatcher
		session    *Session
		eng        *Engine
	)

	newSession := func(enabled ...string) *Session {
		tc, err := NewToolContext(tools.NewBuiltinRegistry(), enabled)
		Expect(err).ToNot(HaveOccurred())
		return NewSession(tc)
	}

	BeforeEach(func() {
		registry = template.NewRegistry()
		dispatcher = newFakeDispatcher("default output")
		session = newSession("bash")
		eng = New(registry, dispatcher, session, WithNotifier(NotifierFunc(func(string, ...any) {})))
	})

	Describe("chain propagation", func() {
		BeforeEach(func() {
			registry.Register("A", simpleTemplate("B", nil, nil))
			registry.Register("B", simpleTemplate("", nil, nil))
			dispatcher.responses["hi"] = "output of A"
			dispatcher.responses["output of A"] = "output of B"
		})

		It("links one result per invocation", func() {
			result, err := eng.RunTemplate(context.Background(), "A", "hi")
			Expect(err).ToNot(HaveOccurred())

			Expect(result.OK).To(BeTrue())
			Expect(result.Template).To(Equal("A"))
			Expect(result.Next).ToNot(BeNil())
			Expect(result.Next.OK).To(BeTrue())
			Expect(result.Next.Template).To(Equal("B"))
			Expect(result.Next.Next).To(BeNil())
		})

		It("feeds the chat output, not the original input, into the next template", func() {
			result, err := eng.RunTemplate(context.Background(), "A", "hi")
			Expect(err).ToNot(HaveOccurred())

			Expect(dispatcher.Requests).To(HaveLen(2))
			Expect(dispatcher.Requests[1].Messages[0].Content).To(Equal("output of A"))
			Expect(result.Next.Output).To(Equal("output of B"))
		})
	})

	Describe("cycle detection", func() {
		It("rejects a self-referencing template on the second entry", func() {
			registry.Register("X", simpleTemplate("X", nil, nil))

			_, err := eng.RunTemplate(context.Background(), "X", "in")
			Expect(err).To(MatchError(ErrCircularTemplate))
			// The first invocation dispatched, the re-entry did not
			Expect(dispatcher.Requests).To(HaveLen(1))
		})

		It("rejects re-entering an earlier chain member", func() {
			registry.Register("A", simpleTemplate("B", nil, nil))
			registry.Register("B", simpleTemplate("A", nil, nil))

			_, err := eng.RunTemplate(context.Background(), "A", "in")
			Expect(err).To(MatchError(ErrCircularTemplate))
			Expect(err.Error()).To(ContainSubstring("A -> B -> A"))
		})

		It("allows re-use of a name across separate top-level runs", func() {
			registry.Register("A", simpleTemplate("", nil, nil))

			for i := 0; i < 2; i++ {
				_, err := eng.RunTemplate(context.Background(), "A", "in")
				Expect(err).ToNot(HaveOccurred())
			}
			Expect(dispatcher.Requests).To(HaveLen(2))
		})
	})

	Describe("chained frames and tool state", func() {
		It("restores the original set after a failing chained frame", func() {
			registry.Register("A", simpleTemplate("B", nil, []string{"git"}))
			registry.Register("B", simpleTemplate("missing", nil, nil))

			_, err := eng.RunTemplate(context.Background(), "A", "in")
			Expect(err).To(MatchError(ErrTemplateNotFound))
			Expect(session.Tools.Enabled()).To(Equal([]string{"bash"}))
		})
	})

	Describe("concurrent independent chains", func() {
		It("restores each session's tools without interference", func() {
			registry.Register("narrowGit", simpleTemplate("", nil, []string{"git"}))
			registry.Register("narrowRg", simpleTemplate("", nil, []string{"ripgrep"}))

			sessionA := newSession("bash")
			sessionB := newSession("file_read", "file_write")
			engA := New(registry, dispatcher, sessionA, WithNotifier(NotifierFunc(func(string, ...any) {})))
			engB := New(registry, dispatcher, sessionB, WithNotifier(NotifierFunc(func(string, ...any) {})))

			var wg sync.WaitGroup
			for i := 0; i < 10; i++ {
				wg.Add(2)
				go func() {
					defer wg.Done()
					_, err := engA.RunTemplate(context.Background(), "narrowGit", "in")
					Expect(err).ToNot(HaveOccurred())
				}()
				go func() {
					defer wg.Done()
					_, err := engB.RunTemplate(context.Background(), "narrowRg", "in")
					Expect(err).ToNot(HaveOccurred())
				}()
			}
			wg.Wait()

			Expect(sessionA.Tools.Enabled()).To(Equal([]string{"bash"}))
			Expect(sessionB.Tools.Enabled()).To(Equal([]string{"file_read", "file_write"}))
		})
	})

	Describe("dispatch payloads", func() {
		It("forwards the directive request verbatim", func() {
			registry.Register("verbatim", func(ctx context.Context, input string) (*template.Directive, error) {
				return &template.Directive{
					Request: chat.Request{
						Model: "special-model",
						Messages: []chat.Message{
							chat.NewSystemMessage("sys prompt"),
							chat.NewUserMessage(input),
						},
					},
				}, nil
			})

			_, err := eng.RunTemplate(context.Background(), "verbatim", "payload")
			Expect(err).ToNot(HaveOccurred())

			Expect(dispatcher.Requests).To(HaveLen(1))
			req := dispatcher.Requests[0]
			Expect(req.Model).To(Equal("special-model"))
			Expect(req.Messages[0].Content).To(Equal("sys prompt"))
			Expect(req.Messages[1].Content).To(Equal("payload"))
		})
	})
})
