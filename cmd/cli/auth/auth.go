package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kelechio/movieql/cmd/cli/config"
	"github.com/kelechio/movieql/cmd/cli/gqlclient"
)

// InitAuth registers auth-related CLI commands on the root command.
func InitAuth(rootCmd *cobra.Command) {
	rootCmd.AddCommand(signupCmd(), loginCmd(), logoutCmd(), whoamiCmd())
}

type authPayload struct {
	Token string `json:"token"`
	User  struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
	} `json:"user"`
}

func signupCmd() *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and store a token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" || email == "" || password == "" {
				return fmt.Errorf("username, email, and password are required")
			}

			var out struct {
				Signup authPayload `json:"signup"`
			}
			err := gqlclient.Do("", `
				mutation Signup($data: SignupInput!) {
					signup(data: $data) { token user { id username email } }
				}`,
				map[string]interface{}{
					"data": map[string]interface{}{
						"username": username,
						"email":    email,
						"password": password,
					},
				}, &out)
			if err != nil {
				return fmt.Errorf("signup failed: %w", err)
			}

			if err := config.SaveToken(out.Signup.Token); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}
			fmt.Printf("Signed up as %s. Token stored locally.\n", out.Signup.User.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "username for the new account")
	cmd.Flags().StringVar(&email, "email", "", "email for the new account")
	cmd.Flags().StringVar(&password, "password", "", "password for the new account")

	return cmd
}

func loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the MovieQL API",
		Long:  "Authenticate with the MovieQL API and store a JWT token for subsequent CLI commands.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				return fmt.Errorf("email and password are required")
			}

			var out struct {
				Login authPayload `json:"login"`
			}
			err := gqlclient.Do("", `
				mutation Login($data: LoginInput!) {
					login(data: $data) { token user { id username email } }
				}`,
				map[string]interface{}{
					"data": map[string]interface{}{"email": email, "password": password},
				}, &out)
			if err != nil {
				return fmt.Errorf("failed to login: %w", err)
			}
			if out.Login.Token == "" {
				return fmt.Errorf("login succeeded but no token returned")
			}

			if err := config.SaveToken(out.Login.Token); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}
			fmt.Println("Login successful. Token stored locally.")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email to authenticate as")
	cmd.Flags().StringVar(&password, "password", "", "account password")

	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ClearToken(); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the currently authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := config.ReadToken()
			if err != nil {
				return fmt.Errorf("please login first")
			}

			var out struct {
				Me *struct {
					ID       string `json:"id"`
					Username string `json:"username"`
					Email    string `json:"email"`
				} `json:"me"`
			}
			if err := gqlclient.Do(token, `query { me { id username email } }`, nil, &out); err != nil {
				return err
			}
			if out.Me == nil {
				return fmt.Errorf("token is invalid or expired; please login again")
			}
			fmt.Printf("%s <%s> (id %s)\n", out.Me.Username, out.Me.Email, out.Me.ID)
			return nil
		},
	}
}
